package services

import "github.com/terraincognita07/nestling/internal/models"

// WeightStandardsRow holds the WHO weight-for-age percentile band edges for a
// single month of age, in grams.
type WeightStandardsRow struct {
	AgeInMonths int
	P3          int
	P15         int
	P50         int
	P85         int
	P97         int
}

// WHO Child Growth Standards, weight-for-age, 0-24 months.
var boysWeightStandards = []WeightStandardsRow{
	{AgeInMonths: 0, P3: 2500, P15: 2900, P50: 3300, P85: 3900, P97: 4400},
	{AgeInMonths: 1, P3: 3400, P15: 3900, P50: 4500, P85: 5100, P97: 5800},
	{AgeInMonths: 2, P3: 4300, P15: 4900, P50: 5600, P85: 6300, P97: 7100},
	{AgeInMonths: 3, P3: 5000, P15: 5700, P50: 6400, P85: 7200, P97: 8000},
	{AgeInMonths: 4, P3: 5600, P15: 6200, P50: 7000, P85: 7800, P97: 8600},
	{AgeInMonths: 5, P3: 6000, P15: 6700, P50: 7500, P85: 8400, P97: 9300},
	{AgeInMonths: 6, P3: 6400, P15: 7100, P50: 7900, P85: 8800, P97: 9800},
	{AgeInMonths: 7, P3: 6700, P15: 7400, P50: 8300, P85: 9200, P97: 10300},
	{AgeInMonths: 8, P3: 6900, P15: 7700, P50: 8600, P85: 9600, P97: 10700},
	{AgeInMonths: 9, P3: 7100, P15: 7900, P50: 8900, P85: 9900, P97: 11000},
	{AgeInMonths: 10, P3: 7400, P15: 8100, P50: 9200, P85: 10200, P97: 11300},
	{AgeInMonths: 11, P3: 7600, P15: 8400, P50: 9400, P85: 10500, P97: 11500},
	{AgeInMonths: 12, P3: 7700, P15: 8600, P50: 9600, P85: 10800, P97: 11800},
	{AgeInMonths: 13, P3: 7900, P15: 8800, P50: 9900, P85: 11000, P97: 12000},
	{AgeInMonths: 14, P3: 8100, P15: 9000, P50: 10100, P85: 11300, P97: 12300},
	{AgeInMonths: 15, P3: 8300, P15: 9200, P50: 10300, P85: 11500, P97: 12500},
	{AgeInMonths: 16, P3: 8400, P15: 9400, P50: 10500, P85: 11700, P97: 12700},
	{AgeInMonths: 17, P3: 8600, P15: 9600, P50: 10700, P85: 11900, P97: 12900},
	{AgeInMonths: 18, P3: 8800, P15: 9800, P50: 10900, P85: 12100, P97: 13100},
	{AgeInMonths: 19, P3: 8900, P15: 9900, P50: 11100, P85: 12300, P97: 13300},
	{AgeInMonths: 20, P3: 9100, P15: 10100, P50: 11300, P85: 12500, P97: 13500},
	{AgeInMonths: 21, P3: 9200, P15: 10300, P50: 11500, P85: 12700, P97: 13700},
	{AgeInMonths: 22, P3: 9400, P15: 10500, P50: 11700, P85: 12900, P97: 13900},
	{AgeInMonths: 23, P3: 9500, P15: 10600, P50: 11800, P85: 13100, P97: 14100},
	{AgeInMonths: 24, P3: 9700, P15: 10800, P50: 12000, P85: 13300, P97: 14300},
}

var girlsWeightStandards = []WeightStandardsRow{
	{AgeInMonths: 0, P3: 2400, P15: 2800, P50: 3200, P85: 3700, P97: 4200},
	{AgeInMonths: 1, P3: 3200, P15: 3600, P50: 4200, P85: 4800, P97: 5500},
	{AgeInMonths: 2, P3: 3900, P15: 4500, P50: 5100, P85: 5800, P97: 6600},
	{AgeInMonths: 3, P3: 4500, P15: 5200, P50: 5800, P85: 6600, P97: 7500},
	{AgeInMonths: 4, P3: 5000, P15: 5700, P50: 6400, P85: 7300, P97: 8200},
	{AgeInMonths: 5, P3: 5400, P15: 6100, P50: 6900, P85: 7800, P97: 8800},
	{AgeInMonths: 6, P3: 5700, P15: 6500, P50: 7300, P85: 8200, P97: 9300},
	{AgeInMonths: 7, P3: 6000, P15: 6800, P50: 7600, P85: 8600, P97: 9800},
	{AgeInMonths: 8, P3: 6300, P15: 7000, P50: 7900, P85: 8900, P97: 10100},
	{AgeInMonths: 9, P3: 6500, P15: 7300, P50: 8200, P85: 9300, P97: 10500},
	{AgeInMonths: 10, P3: 6700, P15: 7500, P50: 8500, P85: 9600, P97: 10800},
	{AgeInMonths: 11, P3: 6900, P15: 7700, P50: 8700, P85: 9900, P97: 11000},
	{AgeInMonths: 12, P3: 7000, P15: 7800, P50: 8900, P85: 10100, P97: 11300},
	{AgeInMonths: 13, P3: 7200, P15: 8000, P50: 9000, P85: 10200, P97: 11500},
	{AgeInMonths: 14, P3: 7300, P15: 8200, P50: 9200, P85: 10400, P97: 11700},
	{AgeInMonths: 15, P3: 7500, P15: 8400, P50: 9400, P85: 10600, P97: 11900},
	{AgeInMonths: 16, P3: 7600, P15: 8500, P50: 9600, P85: 10800, P97: 12100},
	{AgeInMonths: 17, P3: 7800, P15: 8700, P50: 9800, P85: 11000, P97: 12300},
	{AgeInMonths: 18, P3: 7900, P15: 8800, P50: 9900, P85: 11200, P97: 12500},
	{AgeInMonths: 19, P3: 8100, P15: 9000, P50: 10100, P85: 11400, P97: 12700},
	{AgeInMonths: 20, P3: 8200, P15: 9100, P50: 10200, P85: 11500, P97: 12900},
	{AgeInMonths: 21, P3: 8400, P15: 9300, P50: 10400, P85: 11700, P97: 13100},
	{AgeInMonths: 22, P3: 8500, P15: 9400, P50: 10500, P85: 11800, P97: 13300},
	{AgeInMonths: 23, P3: 8600, P15: 9600, P50: 10700, P85: 12000, P97: 13500},
	{AgeInMonths: 24, P3: 8800, P15: 9700, P50: 10800, P85: 12100, P97: 13700},
}

func WeightStandards(sex string) []WeightStandardsRow {
	if sex == models.SexMale {
		return boysWeightStandards
	}
	return girlsWeightStandards
}

// LookupWeightStandards matches the age to an exact table row. Ages outside
// the table (or fractional ages floored elsewhere) report no row; callers
// fall back to the 50th percentile.
func LookupWeightStandards(sex string, ageInMonths int) (WeightStandardsRow, bool) {
	for _, row := range WeightStandards(sex) {
		if row.AgeInMonths == ageInMonths {
			return row, true
		}
	}
	return WeightStandardsRow{}, false
}
