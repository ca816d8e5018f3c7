package dataset

import (
	"sort"

	"gowrangle/domain/core"
)

// Descriptor binds a dataset to its local cache file and remote query
type Descriptor struct {
	ID       core.DatasetID
	Filename string // local cache file, relative to the cache directory
	Source   string // remote database name
	Query    string // fetch specification executed against Source
}

const (
	Titanic core.DatasetID = "titanic"
	Iris    core.DatasetID = "iris"
	Telco   core.DatasetID = "telco"
)

const telcoQuery = `
SELECT * FROM customers
JOIN internet_service_types USING(internet_service_type_id)
JOIN contract_types USING(contract_type_id)
JOIN payment_types USING(payment_type_id)
JOIN customer_signups USING(customer_id);
`

var descriptors = map[core.DatasetID]Descriptor{
	Titanic: {
		ID:       Titanic,
		Filename: "titanic.csv",
		Source:   "titanic_db",
		Query:    "SELECT * FROM passengers;",
	},
	Iris: {
		ID:       Iris,
		Filename: "iris.csv",
		Source:   "iris_db",
		Query:    "SELECT * FROM measurements JOIN species USING(species_id);",
	},
	Telco: {
		ID:       Telco,
		Filename: "telco.csv",
		Source:   "telco_churn",
		Query:    telcoQuery,
	},
}

// Lookup returns the descriptor for a dataset id
func Lookup(id core.DatasetID) (Descriptor, error) {
	d, ok := descriptors[id]
	if !ok {
		return Descriptor{}, core.NewUnknownDatasetError(id)
	}
	return d, nil
}

// IDs lists the supported datasets in sorted order
func IDs() []core.DatasetID {
	ids := make([]core.DatasetID, 0, len(descriptors))
	for id := range descriptors {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
