package header

import (
	"fmt"
	"regexp"
	"strconv"
)

// filenameRe matches the CIK-YY-SEQ.txt filename contract: 10-digit CIK,
// 2-digit year, 6-digit sequence.
var filenameRe = regexp.MustCompile(`^(\d{10})-(\d{2})-(\d{6})\.txt$`)

// SourceURL synthesizes the canonical EDGAR archive URL for a filing
// filename of the form "CIK-YY-SEQ.txt". Returns false if the filename
// doesn't match that contract.
func SourceURL(filename string) (string, bool) {
	m := filenameRe.FindStringSubmatch(filename)
	if m == nil {
		return "", false
	}
	cik, yy, seq := m[1], m[2], m[3]

	cikInt, err := strconv.Atoi(cik)
	if err != nil {
		return "", false
	}

	return fmt.Sprintf(
		"https://www.sec.gov/Archives/edgar/data/%d/%s%s%s.txt",
		cikInt, cik, yy, seq,
	), true
}
