package careers

// JobApplication is the transient intake shape for one job application.
// It is never persisted; it exists only for the duration of one request.
type JobApplication struct {
	Name           string `form:"name" json:"name"`
	Email          string `form:"email" json:"email"`
	Phone          string `form:"phone" json:"phone"`
	Experience     string `form:"experience" json:"experience"`
	CurrentCompany string `form:"currentCompany" json:"currentCompany"`
	ExpectedSalary string `form:"expectedSalary" json:"expectedSalary"`
	NoticePeriod   string `form:"noticePeriod" json:"noticePeriod"`
	Position       string `form:"position" json:"position"`
}
