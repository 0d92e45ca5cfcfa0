package enrich

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/emi03-byte/MedAI/atc"
	"github.com/emi03-byte/MedAI/dataset"
)

func testResolver(t *testing.T) *atc.Resolver {
	t.Helper()
	table, err := atc.NewTable([]atc.Entry{
		{Prefix: "A02B", Codes: atc.Codes(552, 553)},
		{Prefix: "A02BC", Codes: atc.Codes(552, 553, 868)},
		{Prefix: "N02", Codes: atc.Codes(400)},
	})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	return atc.NewResolver(table)
}

func readCSV(t *testing.T, input string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Read(strings.NewReader(input), dataset.ReadOptions{})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	return ds
}

const medications = "Denumire medicament,Cod ATC\n" +
	"OMEPRAZOL,A02BC01\n" +
	"PARACETAMOL,N02BE01\n" +
	"NECUNOSCUT,Z99ZZ99\n" +
	"FARA COD,\n"

func TestApply(t *testing.T) {
	ds := readCSV(t, medications)

	stats, err := New(testResolver(t), "Cod ATC", "Coduri_Boli").Apply(ds)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if !slices.Equal(ds.Columns, []string{"Denumire medicament", "Cod ATC", "Coduri_Boli"}) {
		t.Fatalf("Unexpected columns: %v", ds.Columns)
	}

	want := []string{"552,553,868", "400", "", ""}
	for i, w := range want {
		if got := ds.Value(i, 2); got != w {
			t.Errorf("row %d: expected %q, got %q", i, w, got)
		}
	}

	if stats.Total != 4 || stats.Mapped != 2 || stats.Unmapped != 2 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if !slices.Equal(stats.Codes, []int{400, 552, 553, 868}) {
		t.Errorf("Unexpected codes: %v", stats.Codes)
	}
	if stats.Coverage() != 50 {
		t.Errorf("Expected 50%% coverage, got %v", stats.Coverage())
	}
}

func TestApply_ReplacesExistingColumn(t *testing.T) {
	ds := readCSV(t, "Coduri_Boli,Cod ATC,Denumire medicament\nstale,A02BC01,OMEPRAZOL\n")
	enricher := New(testResolver(t), "Cod ATC", "Coduri_Boli")

	if _, err := enricher.Apply(ds); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	first := ds.Clone()
	if _, err := enricher.Apply(ds); err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}

	if !slices.Equal(ds.Columns, []string{"Cod ATC", "Denumire medicament", "Coduri_Boli"}) {
		t.Errorf("Unexpected columns: %v", ds.Columns)
	}
	if !slices.Equal(ds.Records[0], first.Records[0]) {
		t.Errorf("Apply is not idempotent: %v vs %v", ds.Records[0], first.Records[0])
	}
	if got := ds.Records[0][2]; got != "552,553,868" {
		t.Errorf("Expected regenerated value, got %q", got)
	}
}

func TestApply_MissingCodeColumn(t *testing.T) {
	ds := readCSV(t, "Denumire medicament\nOMEPRAZOL\n")

	_, err := New(testResolver(t), "Cod ATC", "Coduri_Boli").Apply(ds)
	var missing *dataset.MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingColumnError, got %v", err)
	}
	if len(ds.Columns) != 1 {
		t.Errorf("Dataset should be untouched on error, got columns %v", ds.Columns)
	}
}

func TestApply_RowWithExtraCellIsRejected(t *testing.T) {
	input := "Denumire medicament,Cod ATC\nX,A02BC01,extra-cell\n"

	ds, err := dataset.Read(strings.NewReader(input), dataset.ReadOptions{})
	var extra *dataset.ExtraFieldsError
	if !errors.As(err, &extra) {
		t.Fatalf("Expected ExtraFieldsError, got %v", err)
	}
	if ds != nil {
		t.Error("Expected no dataset to enrich")
	}
}

func TestApply_ShortRecords(t *testing.T) {
	ds := dataset.New("Denumire medicament", "Cod ATC")
	ds.Records = []dataset.Record{{"ONLY NAME"}, {"OMEPRAZOL", "A02BC01"}}

	stats, err := New(testResolver(t), "Cod ATC", "Coduri_Boli").Apply(ds)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if stats.Unmapped != 1 || stats.Mapped != 1 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if !slices.Equal(ds.Records[0], dataset.Record{"ONLY NAME", "", ""}) {
		t.Errorf("Unexpected short record: %v", ds.Records[0])
	}
}

func TestApply_DefaultCatalog(t *testing.T) {
	ds := readCSV(t, medications)

	stats, err := New(atc.Default(), "Cod ATC", "Coduri_Boli").Apply(ds)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	want, _ := atc.Default().ResolveString("A02BC01")
	if got := ds.Value(0, 2); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if stats.Total != 4 {
		t.Errorf("Expected 4 records, got %d", stats.Total)
	}
}

func TestCollect(t *testing.T) {
	ds := readCSV(t, medications)
	applied, err := New(testResolver(t), "Cod ATC", "Coduri_Boli").Apply(ds)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	collected, err := Collect(ds, "Coduri_Boli")
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if collected.Total != applied.Total || collected.Mapped != applied.Mapped ||
		!slices.Equal(collected.Codes, applied.Codes) {
		t.Errorf("Collect = %+v, Apply = %+v", collected, applied)
	}
}

func TestCollect_InvalidValue(t *testing.T) {
	ds := readCSV(t, "Coduri_Boli\n\"1,x\"\n")
	if _, err := Collect(ds, "Coduri_Boli"); err == nil {
		t.Error("Expected error for malformed code list")
	}
}

func TestCoverage_Empty(t *testing.T) {
	if got := (Stats{}).Coverage(); got != 0 {
		t.Errorf("Expected 0 coverage for no records, got %v", got)
	}
}

func TestMedications(t *testing.T) {
	ds := readCSV(t, medications)
	if _, err := New(testResolver(t), "Cod ATC", "Coduri_Boli").Apply(ds); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	meds, err := Medications(ds, "Denumire medicament", "Cod ATC", "Coduri_Boli")
	if err != nil {
		t.Fatalf("Medications failed: %v", err)
	}
	if len(meds) != 4 {
		t.Fatalf("Expected 4 medications, got %d", len(meds))
	}
	if meds[0].Name != "OMEPRAZOL" || !slices.Equal(meds[0].DiseaseCodes, []int{552, 553, 868}) {
		t.Errorf("Unexpected first medication: %+v", meds[0])
	}
	if meds[2].DiseaseCodes != nil {
		t.Errorf("Expected no codes for unmapped record, got %v", meds[2].DiseaseCodes)
	}

	if _, err := Medications(ds, "Missing", "Cod ATC", "Coduri_Boli"); err == nil {
		t.Error("Expected error for missing name column")
	}
}
