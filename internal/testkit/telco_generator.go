package testkit

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	"gowrangle/domain/frame"
)

// TelcoGeneratorConfig configures the synthetic telco churn generator
type TelcoGeneratorConfig struct {
	CustomerCount int
	ChurnRate     float64
	BlankEvery    int // every Nth customer gets a whitespace-only total_charges; 0 disables
	Seed          int64
}

// DefaultTelcoConfig returns defaults close to the real dataset's shape
func DefaultTelcoConfig() TelcoGeneratorConfig {
	return TelcoGeneratorConfig{
		CustomerCount: 400,
		ChurnRate:     0.27,
		BlankEvery:    50,
		Seed:          42,
	}
}

// TelcoColumns is the column order produced by the telco join query
var TelcoColumns = []string{
	"payment_type_id", "contract_type_id", "internet_service_type_id", "customer_id",
	"gender", "senior_citizen", "partner", "dependents", "tenure",
	"phone_service", "multiple_lines", "online_security", "online_backup",
	"device_protection", "tech_support", "streaming_tv", "streaming_movies",
	"paperless_billing", "monthly_charges", "total_charges", "churn",
	"internet_service_type", "contract_type", "payment_type", "signup_date",
}

var (
	internetTypes = []string{"DSL", "Fiber optic", "None"}
	contractTypes = []string{"Month-to-month", "One year", "Two year"}
	paymentTypes  = []string{"Electronic check", "Mailed check", "Bank transfer (automatic)", "Credit card (automatic)"}
)

// TelcoDataGenerator generates raw telco frames as the remote store returns them
type TelcoDataGenerator struct {
	config TelcoGeneratorConfig
	rng    *rand.Rand
}

// NewTelcoDataGenerator creates a seeded generator
func NewTelcoDataGenerator(config TelcoGeneratorConfig) *TelcoDataGenerator {
	return &TelcoDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate builds the raw frame. total_charges is text, as in the source
// table, so blanks survive until preparation.
func (g *TelcoDataGenerator) Generate() *frame.Frame {
	n := g.config.CustomerCount
	cells := make(map[string][]frame.Value, len(TelcoColumns))
	put := func(column string, v frame.Value) {
		cells[column] = append(cells[column], v)
	}
	str := frame.NewStringValue
	num := frame.NewNumericValue

	signupBase := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < n; i++ {
		internet := g.rng.Intn(len(internetTypes))
		contract := g.rng.Intn(len(contractTypes))
		payment := g.rng.Intn(len(paymentTypes))
		tenure := 1 + g.rng.Intn(72)
		monthly := math.Round((18+g.rng.Float64()*100)*100) / 100
		hasPhone := g.rng.Float64() < 0.9
		noInternet := internetTypes[internet] == "None"

		put("payment_type_id", num(float64(payment+1)))
		put("contract_type_id", num(float64(contract+1)))
		put("internet_service_type_id", num(float64(internet+1)))
		put("customer_id", str(fmt.Sprintf("%04d-CUST", i+1)))
		put("gender", str(g.pick("Male", "Female")))
		put("senior_citizen", num(float64(g.rng.Intn(2))))
		put("partner", str(g.yesNo(0.5)))
		put("dependents", str(g.yesNo(0.3)))
		put("tenure", num(float64(tenure)))

		if hasPhone {
			put("phone_service", str("Yes"))
			put("multiple_lines", str(g.yesNo(0.45)))
		} else {
			put("phone_service", str("No"))
			put("multiple_lines", str("No phone service"))
		}

		for _, service := range []string{"online_security", "online_backup", "device_protection", "tech_support", "streaming_tv", "streaming_movies"} {
			if noInternet {
				put(service, str("No internet service"))
			} else {
				put(service, str(g.yesNo(0.4)))
			}
		}

		put("paperless_billing", str(g.yesNo(0.6)))
		put("monthly_charges", num(monthly))

		total := strconv.FormatFloat(math.Round(monthly*float64(tenure)*100)/100, 'f', 2, 64)
		if g.config.BlankEvery > 0 && i%g.config.BlankEvery == g.config.BlankEvery-1 {
			total = " "
		}
		put("total_charges", str(total))
		put("churn", str(g.yesNo(g.config.ChurnRate)))

		put("internet_service_type", str(internetTypes[internet]))
		put("contract_type", str(contractTypes[contract]))
		put("payment_type", str(paymentTypes[payment]))
		put("signup_date", str(signupBase.AddDate(0, 0, g.rng.Intn(2000)).Format("2006-01-02 15:04:05")))
	}

	f, err := frame.New(TelcoColumns, frame.RangeIndex(n), cells)
	if err != nil {
		// The generator controls every column, so this is a programming error.
		panic(err)
	}
	return f
}

func (g *TelcoDataGenerator) yesNo(p float64) string {
	if g.rng.Float64() < p {
		return "Yes"
	}
	return "No"
}

func (g *TelcoDataGenerator) pick(options ...string) string {
	return options[g.rng.Intn(len(options))]
}

// LabeledFrame builds a frame with a categorical target column holding
// counts[label] rows per label, interleaved, plus a numeric feature.
func LabeledFrame(target string, counts map[string]int, order []string) *frame.Frame {
	var labels []frame.Value
	remaining := make(map[string]int, len(counts))
	for k, v := range counts {
		remaining[k] = v
	}
	for {
		added := false
		for _, label := range order {
			if remaining[label] > 0 {
				labels = append(labels, frame.NewStringValue(label))
				remaining[label]--
				added = true
			}
		}
		if !added {
			break
		}
	}

	feature := make([]frame.Value, len(labels))
	for i := range feature {
		feature[i] = frame.NewNumericValue(float64(i))
	}

	f, err := frame.New([]string{"feature", target}, frame.RangeIndex(len(labels)), map[string][]frame.Value{
		"feature": feature,
		target:    labels,
	})
	if err != nil {
		panic(err)
	}
	return f
}
