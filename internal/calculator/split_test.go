package calculator

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ratio(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func TestCalculateSeedSplit(t *testing.T) {
	tests := []struct {
		name           string
		total          string
		source         models.PaymentSource
		seedRatio      decimal.NullDecimal
		householdRatio decimal.NullDecimal
		wantMe         string
		wantPartner    string
	}{
		{
			name:        "me takes the whole amount",
			total:       "123.45",
			source:      models.SourceMe,
			seedRatio:   ratio("0.3"),
			wantMe:      "123.45",
			wantPartner: "0",
		},
		{
			name:        "partner takes the whole amount",
			total:       "80",
			source:      models.SourcePartner,
			wantMe:      "0",
			wantPartner: "80",
		},
		{
			name:           "joint uses seed ratio over household ratio",
			total:          "100",
			source:         models.SourceJoint,
			seedRatio:      ratio("0.6"),
			householdRatio: ratio("0.5"),
			wantMe:         "60",
			wantPartner:    "40",
		},
		{
			name:           "joint falls back to household ratio",
			total:          "200",
			source:         models.SourceJoint,
			householdRatio: ratio("0.25"),
			wantMe:         "50",
			wantPartner:    "150",
		},
		{
			name:        "joint falls back to an even split",
			total:       "99.99",
			source:      models.SourceJoint,
			wantMe:      "50",
			wantPartner: "49.99",
		},
		{
			name:        "joint with ratio zero gives partner everything",
			total:       "42",
			source:      models.SourceJoint,
			seedRatio:   ratio("0"),
			wantMe:      "0",
			wantPartner: "42",
		},
		{
			name:        "joint thirds still sum to the total",
			total:       "100",
			source:      models.SourceJoint,
			seedRatio:   ratio("0.333333"),
			wantMe:      "33.33",
			wantPartner: "66.67",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := CalculateSeedSplit(dec(tt.total), tt.source, tt.seedRatio, tt.householdRatio)
			if !split.AmountMe.Equal(dec(tt.wantMe)) {
				t.Errorf("AmountMe = %s, want %s", split.AmountMe, tt.wantMe)
			}
			if !split.AmountPartner.Equal(dec(tt.wantPartner)) {
				t.Errorf("AmountPartner = %s, want %s", split.AmountPartner, tt.wantPartner)
			}
		})
	}
}

func TestCalculateSeedSplit_JointSumsExactly(t *testing.T) {
	totals := []string{"0", "0.01", "1", "33.33", "100", "1234.57", "99999.99"}
	ratios := []string{"0", "0.1", "0.125", "0.3333", "0.5", "0.6", "0.6667", "0.99", "1"}

	for _, total := range totals {
		for _, r := range ratios {
			split := CalculateSeedSplit(dec(total), models.SourceJoint, ratio(r), decimal.NullDecimal{})
			if sum := split.AmountMe.Add(split.AmountPartner); !sum.Equal(dec(total)) {
				t.Errorf("total %s ratio %s: me %s + partner %s = %s", total, r, split.AmountMe, split.AmountPartner, sum)
			}
		}
	}
}

func TestValidateRatio(t *testing.T) {
	for _, r := range []string{"0", "0.5", "1"} {
		if err := ValidateRatio(dec(r)); err != nil {
			t.Errorf("ValidateRatio(%s) = %v, want nil", r, err)
		}
	}
	for _, r := range []string{"-0.01", "1.01", "2"} {
		if err := ValidateRatio(dec(r)); err == nil {
			t.Errorf("ValidateRatio(%s) = nil, want error", r)
		}
	}
}
