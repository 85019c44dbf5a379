package pipeline

import (
	"context"
	"log"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/quantlink/quantlink/corpus"
	"github.com/quantlink/quantlink/relex"
)

// ExportReport writes the augmented test candidate table (the prediction
// column included) to an XLSX workbook. Skipped when no report path is
// configured.
func ExportReport(_ context.Context, args *relex.PipelineContext) error {
	if args.Config.ReportPath == "" {
		return nil
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []any{
		"docId", "sentId", "quantityId", "otherId", "label", "prediction", "sentence"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrap(err, "failed to write report header")
	}

	for i, cand := range args.Candidates[corpus.SplitTest] {
		prediction := ""
		if cand.Prediction != nil {
			if *cand.Prediction {
				prediction = "true"
			} else {
				prediction = "false"
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			cand.DocID, cand.SentID, cand.QuantityID, cand.OtherID,
			cand.Label, prediction, strings.Join(cand.Tokens, " ")}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrap(err, "failed to write report row")
		}
	}

	if err := f.SaveAs(args.Config.ReportPath); err != nil {
		return errors.Wrap(err, "failed to save report")
	}
	log.Printf("report written to %s", args.Config.ReportPath)
	return nil
}
