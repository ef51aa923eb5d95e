package employee

// Employee is a workforce member. All reference-data links are optional and
// render as "N/A" in listings when absent.
type Employee struct {
	ID           int64
	FirstName    string
	LastName     string
	DepartmentID *int64
	JobID        *int64
	TypeID       *int64
	SkillID      *int64

	// Joined reference names for listings; nil when the link is absent.
	DepartmentName *string
	JobTitle       *string
	EmploymentType *string
	SkillName      *string
}
