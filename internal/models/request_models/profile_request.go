package request_models

type EditUserRequest struct {
	FirstName         string   `json:"first_name"`
	LastName          string   `json:"last_name"`
	Phone             string   `json:"phone"`
	Bio               string   `json:"bio"`
	Location          string   `json:"location"`
	PreferredLocation string   `json:"preferred_location"`
	SalaryExpectation int64    `json:"salary_expectation"`
	RemoteWork        bool     `json:"remote_work"`
	WillingToRelocate bool     `json:"willing_to_relocate"`
	Skills            []string `json:"skills"`
}

type EditCompanyRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	CompanySize int    `json:"company_size"`
	Location    string `json:"location"`
	Website     string `json:"website"`
}
