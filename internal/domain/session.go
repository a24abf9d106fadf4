package domain

// Session is the login record behind a session cookie.
// Any non-empty name/email pair is accepted; the username is the
// task-store bucket key.
type Session struct {
	User  string `json:"user"`
	Email string `json:"email"`
}

// Section is a named date-range bucket used to filter the task list view.
type Section string

const (
	SectionMyDay     Section = "myDay"
	SectionThisWeek  Section = "thisWeek"
	SectionThisMonth Section = "thisMonth"
	SectionOther     Section = "other"
)
