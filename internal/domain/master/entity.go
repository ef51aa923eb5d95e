package master

// Flat reference tables. No behavior beyond lookups, so the entities double
// as their own responses.

type WorkLocation struct {
	ID      int64  `json:"id"`
	Address string `json:"address"`
}

type Department struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	LocationID *int64 `json:"location_id"`
}

type JobTitle struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type EmploymentType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Skill struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
