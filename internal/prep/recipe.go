package prep

// BinaryMapping derives a 0/1 column from a Yes/No column
type BinaryMapping struct {
	Source  string
	Derived string
}

// Recipe describes the cleaning of one fixed dataset schema. Steps run in
// field order: blank removal and numeric coercion, column drops, binary
// remaps, one-hot encoding, then the split on Target.
type Recipe struct {
	Name          string
	NumericText   string // text column that must become float; blank rows are dropped
	DropColumns   []string
	BinaryColumns []BinaryMapping
	EncodeColumns []string
	Target        string
}

// YesNo is the mapping applied to every BinaryMapping
var YesNo = map[string]float64{"Yes": 1, "No": 0}

// Telco prepares the telco churn dataset as returned by the default query
var Telco = Recipe{
	Name:        "telco",
	NumericText: "total_charges",
	DropColumns: []string{
		"payment_type_id",
		"internet_service_type_id",
		"contract_type_id",
		"customer_id",
		"signup_date",
	},
	BinaryColumns: []BinaryMapping{
		{Source: "phone_service", Derived: "has_phone"},
		{Source: "paperless_billing", Derived: "is_paperless"},
		{Source: "partner", Derived: "has_partner"},
		{Source: "dependents", Derived: "has_dependents"},
		{Source: "churn", Derived: "has_churned"},
	},
	EncodeColumns: []string{
		"gender",
		"multiple_lines",
		"online_security",
		"online_backup",
		"device_protection",
		"tech_support",
		"streaming_tv",
		"streaming_movies",
		"payment_type",
		"contract_type",
		"internet_service_type",
	},
	Target: "churn",
}

// RequiredColumns lists every column the recipe reads
func (r Recipe) RequiredColumns() []string {
	cols := []string{r.NumericText}
	cols = append(cols, r.DropColumns...)
	for _, b := range r.BinaryColumns {
		cols = append(cols, b.Source)
	}
	cols = append(cols, r.EncodeColumns...)
	return append(cols, r.Target)
}
