package lectio

const (
	StatusNormal    = "normal"
	StatusChanged   = "changed"
	StatusCancelled = "cancelled"
)

// ScheduleEntry is a single lesson block of a schedule week. Fields that could
// not be read hold their fallback text, never an empty value where a fallback
// exists.
type ScheduleEntry struct {
	Status      string `json:"status"`
	ClassName   string `json:"class_name"`
	Teacher     string `json:"teacher"`
	Room        string `json:"room"`
	Description string `json:"description"`
	// Time is "HH:MM - HH:MM".
	Time string `json:"time"`
	// Day is a danish weekday abbreviation (ma, ti, on, to, fr).
	Day       string `json:"day"`
	Homework  string `json:"homework"`
	Resources string `json:"resources"`
	Notes     string `json:"notes"`
	// DateTime is the lesson date as lectio prints it ("7/10-2024").
	DateTime     string `json:"date_time"`
	DetailedLink string `json:"detailed_link"`
}

type AbsenceDetail struct {
	Percent string `json:"percent"`
	Modules string `json:"modules"`
}

type WritingAbsence struct {
	AsOf       AbsenceDetail `json:"as_of"`
	YearToDate AbsenceDetail `json:"year_to_date"`
}

type AbsenceRecord struct {
	Team       string          `json:"team"`
	AsOf       AbsenceDetail   `json:"as_of"`
	YearToDate AbsenceDetail   `json:"year_to_date"`
	Writing    *WritingAbsence `json:"writing"`
}

type AssignmentRecord struct {
	Week  string `json:"week"`
	Team  string `json:"team"`
	Title string `json:"title"`
	// Deadline is the raw deadline followed by a countdown in parentheses.
	Deadline       string  `json:"deadline"`
	StudentTime    float64 `json:"student_time"`
	Status         string  `json:"status"`
	AbsencePercent string  `json:"absence_percent"`
	FollowUp       string  `json:"follow_up"`
	AssignmentNote string  `json:"assignment_note"`
	Grade          string  `json:"grade"`
	StudentNote    string  `json:"student_note"`
	Urgency        float64 `json:"urgency"`
}

type GradeDetail struct {
	Grade  string  `json:"grade"`
	Weight float64 `json:"weight"`
}

type GradeRecord struct {
	Team             string       `json:"team"`
	Subject          string       `json:"subject"`
	FirstStandpoint  *GradeDetail `json:"first_standpoint"`
	SecondStandpoint *GradeDetail `json:"second_standpoint"`
	FinalYearGrade   *GradeDetail `json:"final_year_grade"`
	InternalExam     *GradeDetail `json:"internal_exam"`
	FinalExam        *GradeDetail `json:"final_exam"`
}

type GradeNoteRecord struct {
	Team      string `json:"team"`
	GradeType string `json:"grade_type"`
	Grade     string `json:"grade"`
	Date      string `json:"date"`
	Note      string `json:"note"`
}

type GradeReport struct {
	Grades     []GradeRecord     `json:"grades"`
	GradeNotes []GradeNoteRecord `json:"grade_notes"`
}

// LoginResult is returned by a login that reached the portal, Verified is true
// when the dashboard was readable with the new session.
type LoginResult struct {
	Verified bool
}
