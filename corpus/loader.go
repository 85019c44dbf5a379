package corpus

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// column layout of the corpus TSV files
const numColumns = 7

// Load reads one split's TSV file and groups its rows into sentences,
// preserving the file's (docId, sentId) first-appearance order. A malformed
// row aborts the load: silently dropping rows would desynchronize the
// candidate and label tables built downstream.
func Load(path string) ([]*Sentence, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open corpus file")
	}
	defer file.Close()

	sentences := make([]*Sentence, 0, 1024)
	index := make(map[string]*Sentence)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line == "" {
			continue
		}
		if lineno == 1 && strings.HasPrefix(line, "docId\t") {
			// header row
			continue
		}
		record, err := parseRow(line)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", path, lineno)
		}
		key := record.DocID + "\x00" + strconv.Itoa(record.SentID)
		sent, ok := index[key]
		if !ok {
			sent = &Sentence{DocID: record.DocID, SentID: record.SentID}
			index[key] = sent
			sentences = append(sentences, sent)
		}
		sent.Tokens = append(sent.Tokens, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read corpus file")
	}
	return sentences, nil
}

func parseRow(line string) (TokenRecord, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != numColumns {
		return TokenRecord{}, errors.Errorf(
			"malformed row: expected %d columns, got %d", numColumns, len(fields))
	}
	sentID, err := strconv.Atoi(fields[1])
	if err != nil {
		return TokenRecord{}, errors.Errorf(
			"malformed row: sentId %q is not an integer", fields[1])
	}
	if fields[0] == "" || fields[2] == "" || fields[3] == "" || fields[4] == "" {
		return TokenRecord{}, errors.New(
			"malformed row: docId, word, lemma and bio are required")
	}
	return TokenRecord{
		DocID:       fields[0],
		SentID:      sentID,
		Word:        fields[2],
		Lemma:       fields[3],
		BIO:         fields[4],
		EntityID:    nullable(fields[5]),
		RelTargetID: nullable(fields[6]),
	}, nil
}

// nullable maps the TSV's empty-cell spellings to the empty string.
func nullable(field string) string {
	if field == "_" || field == "NULL" {
		return ""
	}
	return field
}
