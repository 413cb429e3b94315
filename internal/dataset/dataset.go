// Package dataset defines the catalogue of known StatsWales datasets: for
// each dataset code, the file it lives in, the source format, and the column
// mapping that resolves the domain's logical roles to that file's literal
// column or key names. Column layouts are fixed per dataset and supplied
// here, never inferred from the files.
package dataset

import (
	"fmt"

	"github.com/couchcryptid/bethyw/internal/domain"
)

// Dataset describes one importable source file.
type Dataset struct {
	// Code is the key users select the dataset by on the command line.
	Code string
	// File is the filename inside the data directory.
	File string
	// Format selects the parser.
	Format domain.SourceFormat
	// Columns resolves logical roles to this file's column/key names.
	Columns domain.ColumnMapping
}

// AreasCSV is the bootstrap file of local authority codes and names. It is
// always imported first so the wide CSV datasets can attach to named areas.
var AreasCSV = Dataset{
	Code:   "areas",
	File:   "areas.csv",
	Format: domain.AuthorityCodeCSV,
	Columns: domain.ColumnMapping{
		domain.AuthCode:    "Local authority code",
		domain.AuthNameEng: "Name (eng)",
		domain.AuthNameCym: "Name (cym)",
	},
}

// All lists every importable dataset, in import order.
var All = []Dataset{
	{
		Code:   "popden",
		File:   "popu1009.json",
		Format: domain.WelshStatsJSON,
		Columns: domain.ColumnMapping{
			domain.AuthCode:    "Localauthority_Code",
			domain.AuthNameEng: "Localauthority_ItemName_ENG",
			domain.MeasureCode: "Measure_Code",
			domain.MeasureName: "Measure_ItemName_ENG",
			domain.YearCol:     "Year_Code",
			domain.AuthNameCym: "Localauthority_ItemName_CYM",
		},
	},
	{
		Code:   "biz",
		File:   "econ0080.json",
		Format: domain.WelshStatsJSON,
		Columns: domain.ColumnMapping{
			domain.AuthCode:    "Area_Code",
			domain.AuthNameEng: "Area_ItemName_ENG",
			domain.MeasureCode: "Variable_Code",
			domain.MeasureName: "Variable_ItemName_ENG",
			domain.YearCol:     "Year_Code",
			domain.AuthNameCym: "Area_ItemName_CYM",
		},
	},
	{
		Code:   "aqua",
		File:   "envi0201.json",
		Format: domain.WelshStatsJSON,
		Columns: domain.ColumnMapping{
			domain.AuthCode:    "Area_Code",
			domain.AuthNameEng: "Area_ItemName_ENG",
			domain.MeasureCode: "Pollutant_ItemName_ENG",
			domain.MeasureName: "Pollutant_ItemName_ENG",
			domain.YearCol:     "Year_Code",
			domain.AuthNameCym: "Area_ItemName_CYM",
		},
	},
	{
		Code:   "trans",
		File:   "tran0152.json",
		Format: domain.WelshStatsJSON,
		Columns: domain.ColumnMapping{
			domain.AuthCode:    "Area_Code",
			domain.AuthNameEng: "Area_ItemName_ENG",
			domain.MeasureCode: "Measure_Code",
			domain.MeasureName: "Measure_ItemName_ENG",
			domain.YearCol:     "Year_Code",
			domain.AuthNameCym: "Area_ItemName_CYM",
		},
	},
	{
		Code:   "complete-popden",
		File:   "complete-popu1009-popden.csv",
		Format: domain.AuthorityByYearCSV,
		Columns: domain.ColumnMapping{
			domain.AuthCode:          "AuthorityCode",
			domain.SingleMeasureCode: "dens",
			domain.SingleMeasureName: "Population density",
		},
	},
	{
		Code:   "complete-pop",
		File:   "complete-popu1009-pop.csv",
		Format: domain.AuthorityByYearCSV,
		Columns: domain.ColumnMapping{
			domain.AuthCode:          "AuthorityCode",
			domain.SingleMeasureCode: "pop",
			domain.SingleMeasureName: "Population",
		},
	},
	{
		Code:   "complete-area",
		File:   "complete-popu1009-area.csv",
		Format: domain.AuthorityByYearCSV,
		Columns: domain.ColumnMapping{
			domain.AuthCode:          "AuthorityCode",
			domain.SingleMeasureCode: "area",
			domain.SingleMeasureName: "Land area",
		},
	},
}

// Lookup returns the dataset definition for a code, or ErrUnknownDataset.
// Matching is exact: dataset codes are lowercase by convention.
func Lookup(code string) (Dataset, error) {
	for _, d := range All {
		if d.Code == code {
			return d, nil
		}
	}
	return Dataset{}, fmt.Errorf("no dataset matches key: %s: %w", code, domain.ErrUnknownDataset)
}
