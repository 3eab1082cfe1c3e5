package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconSchool   = "\U000F0474"
	IconStudent  = "\U000F1A6E"
	IconTeacher  = "\U000F0004"
	IconCalendar = ""
	IconMoney    = "\U000F0116"
	IconCheck    = ""
	IconCross    = ""
	IconFile     = ""
	IconFolder   = ""
	IconSearch   = ""
)

// Notice icons.
var (
	IconNotifySuccess = ""
	IconNotifyInfo    = ""
	IconNotifyWarning = ""
	IconNotifyError   = ""
)
