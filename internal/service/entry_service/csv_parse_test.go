package entry_service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tcp_snm/raffle/internal/raffle_errors"
)

const basicHeader = "entry_number,password,is_winner"

func TestParseBasicScenario(t *testing.T) {
	csvText := basicHeader + "\n001,1111,true\n002,2222,false\n"

	records, rowErrs, err := parseEntriesCSV(csvText, "B001", devConfig())
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("unexpected row errors: %+v", rowErrs)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	first := records[0]
	if first.prizeID != "B001" || first.entryNumber != "001" || !first.isWinner {
		t.Errorf("unexpected first record: %+v", first)
	}
	if first.password == nil || *first.password != "1111" {
		t.Errorf("unexpected first password: %v", first.password)
	}
	if first.line != 2 {
		t.Errorf("first record line = %d, want 2", first.line)
	}
	second := records[1]
	if second.entryNumber != "002" || second.isWinner {
		t.Errorf("unexpected second record: %+v", second)
	}
}

func TestParseMissingHeaderColumns(t *testing.T) {
	cases := []string{
		"entry_number,password\n001,1111",
		"number,password,is_winner\n001,1111,true",
		"foo,bar,baz\n1,2,3",
	}
	for _, csvText := range cases {
		records, _, err := parseEntriesCSV(csvText, "B001", devConfig())
		if err == nil {
			t.Errorf("parse of %q succeeded, want header error", csvText)
		}
		if !errors.Is(err, raffle_errors.ErrInvalidRequest) {
			t.Errorf("header error is not ErrInvalidRequest: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("header error still produced %d records", len(records))
		}
	}
}

func TestParseHeaderCaseAndOrderInsensitive(t *testing.T) {
	csvText := "IS_WINNER, Password ,entry_number\ntrue,1111,001\n"

	records, rowErrs, err := parseEntriesCSV(csvText, "B001", devConfig())
	if err != nil || len(rowErrs) != 0 {
		t.Fatalf("parse failed: err=%v rowErrs=%+v", err, rowErrs)
	}
	if len(records) != 1 || records[0].entryNumber != "001" || !records[0].isWinner {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestParseEmptyText(t *testing.T) {
	for _, csvText := range []string{"", "   ", "\n\n  \n"} {
		_, _, err := parseEntriesCSV(csvText, "B001", devConfig())
		if !errors.Is(err, raffle_errors.ErrInvalidRequest) {
			t.Errorf("parse of %q = %v, want ErrInvalidRequest", csvText, err)
		}
	}
}

func TestParseBOMAndLineEndings(t *testing.T) {
	csvText := "\ufeff" + basicHeader + "\r\n001,1111,true\r\n\r\n002,2222,false\r"

	records, rowErrs, err := parseEntriesCSV(csvText, "B001", devConfig())
	if err != nil || len(rowErrs) != 0 {
		t.Fatalf("parse failed: err=%v rowErrs=%+v", err, rowErrs)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
}

func TestParseDuplicateEntryNumber(t *testing.T) {
	csvText := basicHeader + "\n001,1111,true\n002,2222,false\n001,3333,false\n"

	records, rowErrs, err := parseEntriesCSV(csvText, "B001", devConfig())
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(rowErrs) != 1 {
		t.Fatalf("got %d row errors, want 1: %+v", len(rowErrs), rowErrs)
	}
	dup := rowErrs[0]
	if dup.Row != 4 || dup.Field != "entry_number" {
		t.Errorf("unexpected duplicate error: %+v", dup)
	}
	if !strings.Contains(dup.Message, "line 2") {
		t.Errorf("duplicate error does not cite first occurrence: %q", dup.Message)
	}
	// the first occurrence survives
	if len(records) != 2 || records[0].entryNumber != "001" || records[0].password == nil || *records[0].password != "1111" {
		t.Errorf("unexpected surviving records: %+v", records)
	}
}

func TestParseColumnCountMismatch(t *testing.T) {
	csvText := basicHeader + "\n001,1111\n"

	records, rowErrs, err := parseEntriesCSV(csvText, "B001", devConfig())
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(records) != 0 || len(rowErrs) != 1 {
		t.Fatalf("records=%d rowErrs=%+v, want 0 records and 1 error", len(records), rowErrs)
	}
	if rowErrs[0].Row != 2 {
		t.Errorf("error row = %d, want 2", rowErrs[0].Row)
	}
}

func TestParseEntryNumberRequired(t *testing.T) {
	csvText := basicHeader + "\n ,1111,true\n"

	_, rowErrs, err := parseEntriesCSV(csvText, "B001", devConfig())
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(rowErrs) != 1 || rowErrs[0].Field != "entry_number" {
		t.Fatalf("unexpected row errors: %+v", rowErrs)
	}
}

func TestParseWinnerVocabularyStrict(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
		win   bool
	}{
		{"true", true, true},
		{"TRUE", true, true},
		{"False", true, false},
		{"yes", false, false},
		{"1", false, false},
		{"y", false, false},
		{"", false, false},
	}
	for _, c := range cases {
		csvText := fmt.Sprintf("%s\n001,1111,%s\n", basicHeader, c.value)
		records, rowErrs, err := parseEntriesCSV(csvText, "B001", devConfig())
		if err != nil {
			t.Fatalf("unexpected fatal error for %q: %v", c.value, err)
		}
		if c.ok {
			if len(rowErrs) != 0 || len(records) != 1 {
				t.Errorf("is_winner=%q: rowErrs=%+v records=%d", c.value, rowErrs, len(records))
				continue
			}
			if records[0].isWinner != c.win {
				t.Errorf("is_winner=%q parsed as %v, want %v", c.value, records[0].isWinner, c.win)
			}
		} else {
			if len(rowErrs) != 1 || rowErrs[0].Field != "is_winner" {
				t.Errorf("is_winner=%q: rowErrs=%+v, want one is_winner error", c.value, rowErrs)
			}
		}
	}
}

func TestParsePasswordPolicyDev(t *testing.T) {
	csvText := basicHeader + "\n001,12,true\n002,1234,false\n"

	records, rowErrs, err := parseEntriesCSV(csvText, "B001", devConfig())
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(rowErrs) != 1 || rowErrs[0].Row != 2 || rowErrs[0].Field != "password" {
		t.Fatalf("unexpected row errors: %+v", rowErrs)
	}
	if len(records) != 1 || records[0].entryNumber != "002" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestParsePasswordPolicyProd(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"12", false},       // too short
		{"12345678", false}, // no letters
		{"abcdefgh", false}, // no upper, no digit
		{"Abcdefg1", true},
		{"Passw0rdX", true},
	}
	for _, c := range cases {
		csvText := fmt.Sprintf("%s\n001,%s,true\n", basicHeader, c.password)
		_, rowErrs, err := parseEntriesCSV(csvText, "B001", prodConfig())
		if err != nil {
			t.Fatalf("unexpected fatal error for %q: %v", c.password, err)
		}
		if c.ok && len(rowErrs) != 0 {
			t.Errorf("password %q rejected under prod policy: %+v", c.password, rowErrs)
		}
		if !c.ok && (len(rowErrs) != 1 || rowErrs[0].Field != "password" || rowErrs[0].Row != 2) {
			t.Errorf("password %q: rowErrs=%+v, want one password error on row 2", c.password, rowErrs)
		}
	}
}

func TestParseEmptyPasswordMeansNoPassword(t *testing.T) {
	csvText := basicHeader + "\n001,,true\n"

	records, rowErrs, err := parseEntriesCSV(csvText, "B001", prodConfig())
	if err != nil || len(rowErrs) != 0 {
		t.Fatalf("parse failed: err=%v rowErrs=%+v", err, rowErrs)
	}
	if len(records) != 1 || records[0].password != nil {
		t.Fatalf("empty password should parse to nil, got %+v", records)
	}
}

func TestParseRowLimitBoundary(t *testing.T) {
	cfg := devConfig()
	cfg.MaxRows = 3

	var b strings.Builder
	b.WriteString(basicHeader + "\n")
	for i := 1; i <= 3; i++ {
		fmt.Fprintf(&b, "%03d,1111,false\n", i)
	}

	// exactly the maximum succeeds
	records, rowErrs, err := parseEntriesCSV(b.String(), "B001", cfg)
	if err != nil || len(rowErrs) != 0 || len(records) != 3 {
		t.Fatalf("max rows rejected: err=%v rowErrs=%+v records=%d", err, rowErrs, len(records))
	}

	// one beyond fails fatally with no records
	b.WriteString("004,1111,false\n")
	records, _, err = parseEntriesCSV(b.String(), "B001", cfg)
	if !errors.Is(err, raffle_errors.ErrInvalidRequest) {
		t.Fatalf("over-limit parse = %v, want ErrInvalidRequest", err)
	}
	if len(records) != 0 {
		t.Fatalf("over-limit parse still produced %d records", len(records))
	}
}

func TestParsePrizeIDColumn(t *testing.T) {
	header := "prize_id,entry_number,password,is_winner"

	t.Run("blank cells inherit the target", func(t *testing.T) {
		csvText := header + "\n,001,1111,true\nB001,002,2222,false\n"
		records, rowErrs, err := parseEntriesCSV(csvText, "B001", devConfig())
		if err != nil || len(rowErrs) != 0 {
			t.Fatalf("parse failed: err=%v rowErrs=%+v", err, rowErrs)
		}
		for _, record := range records {
			if record.prizeID != "B001" {
				t.Errorf("record %s has prize %q, want B001", record.entryNumber, record.prizeID)
			}
		}
	})

	t.Run("mismatch is fatal for the whole batch", func(t *testing.T) {
		csvText := header + "\nB001,001,1111,true\nB002,002,2222,false\n"
		records, rowErrs, err := parseEntriesCSV(csvText, "B001", devConfig())
		if !errors.Is(err, raffle_errors.ErrInvalidRequest) {
			t.Fatalf("mismatch parse = %v, want ErrInvalidRequest", err)
		}
		if len(records) != 0 || len(rowErrs) != 0 {
			t.Fatalf("mismatch parse leaked records=%d rowErrs=%d", len(records), len(rowErrs))
		}
	})

	t.Run("csv can supply the prize when the request does not", func(t *testing.T) {
		csvText := header + "\nB007,001,1111,true\n,002,2222,false\n"
		records, rowErrs, err := parseEntriesCSV(csvText, "", devConfig())
		if err != nil || len(rowErrs) != 0 {
			t.Fatalf("parse failed: err=%v rowErrs=%+v", err, rowErrs)
		}
		for _, record := range records {
			if record.prizeID != "B007" {
				t.Errorf("record %s has prize %q, want B007", record.entryNumber, record.prizeID)
			}
		}
	})

	t.Run("no prize anywhere is fatal", func(t *testing.T) {
		csvText := basicHeader + "\n001,1111,true\n"
		_, _, err := parseEntriesCSV(csvText, "", devConfig())
		if !errors.Is(err, raffle_errors.ErrInvalidRequest) {
			t.Fatalf("parse without prize = %v, want ErrInvalidRequest", err)
		}
	})
}

func TestParseQuotedFields(t *testing.T) {
	csvText := basicHeader + "\n\"001\",\"pass,word\",true\n"

	records, rowErrs, err := parseEntriesCSV(csvText, "B001", devConfig())
	if err != nil || len(rowErrs) != 0 {
		t.Fatalf("parse failed: err=%v rowErrs=%+v", err, rowErrs)
	}
	if len(records) != 1 || records[0].password == nil || *records[0].password != "pass,word" {
		t.Fatalf("quoted field not preserved: %+v", records)
	}
}
