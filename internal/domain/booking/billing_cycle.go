package booking

type BillingCycle string

const (
	BillingMonthly   BillingCycle = "monthly"
	BillingQuarterly BillingCycle = "quarterly"
	BillingAnnual    BillingCycle = "annual"
)

const (
	DefaultNoticePeriodDays = 30
	MaxNoticePeriodDays     = 365
)

func ParseBillingCycle(s string) (BillingCycle, error) {
	if s == "" {
		return BillingMonthly, nil
	}
	c := BillingCycle(s)
	switch c {
	case BillingMonthly, BillingQuarterly, BillingAnnual:
		return c, nil
	}
	return "", ErrInvalidBillingCycle
}
