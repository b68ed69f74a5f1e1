package constants

// Closed set of account roles.
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

var AllRoles = []string{RoleTeacher, RoleStudent}

// Forbidden messages reused by services and the role middleware.
const (
	ErrOnlyTeachersCanSendRequests    = "Only teachers can send requests."
	ErrOnlyStudentsCanRespondRequests = "Only students can respond to requests."
	ErrOnlyTeachersCanCreateEvents    = "Only teachers can create events."
	ErrOnlyStudentsCanRespondEvents   = "Only students can respond to events."
	ErrOnlyTeachersCanFetchStudents   = "Only teachers can fetch student info"
	ErrOnlyTeacherCanDisconnect       = "Only the teacher can disconnect the connection"
	ErrOnlyTeachersDashboard          = "Only teachers can access the dashboard."
)
