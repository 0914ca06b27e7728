// Package entity defines the timetable markings printed next to departure times.
package entity

// Marking is a single legend entry, e.g. "D" or "~W".
type Marking struct {
	Code        string
	Description string
}

// DayType is a service-day category a course runs on.
type DayType string

const (
	Workdays        DayType = "WORKDAYS"
	Saturdays       DayType = "SATURDAYS"
	SundaysHolidays DayType = "SUNDAYS_HOLIDAYS"
)

// AllDays is used when a symbol carries no known day restriction.
var AllDays = []DayType{Workdays, Saturdays, SundaysHolidays}

// CourseLegend maps each marking to the description from the printed timetable legend.
var CourseLegend = map[string]string{
	"&":  "kursuje w dniu 1 stycznia",
	"~W": "połączenie składa się z 2 linii",
	"6":  "kursuje w soboty",
	"7G": "kursuje w niedziele giełdowe",
	"a":  "nie kursuje w pierwszy dzień Świąt Wielkanocnych oraz w dniu 25 XII",
	"b":  "nie kursuje w dniu 1.I, w pierwszy dzień Świąt Wielkanocnych i w dniu 25 XII",
	"C":  "kursuje w soboty, niedziele i święta",
	"D":  "kursuje od poniedziałku do piątku oprócz świąt",
	"d":  "nie kursuje w dniu 1.I, w pierwszy i drugi dzień Świąt Wielkanocnych oraz w dniach 25 i 26 XII",
	"e":  "nie kursuje w okresie ferii letnich",
	"Ex": "kurs ekspresowy",
	"g":  "nie kursuje w dniu 24.XII",
	"h":  "nie kursuje w Wielką Sobotę oraz w dniu 24.XII",
	"l":  "nie kursuje w dniu 31.XII",
	"M":  "kurs. od pn. do pt. w okresie ferii letnich i zimowych oraz szkolnych przerw świątecznych oprócz św.",
	"m":  "nie kursuje w dniach 24 i 31.XII",
	"p":  "nie kursuje w pierwszy dzień Świąt Wielkanocnych oraz 25.XII",
	"S":  "kursuje w dni nauki szkolnej",
	"U":  "przewóz o charakterze użyteczności publicznej",
	"ź":  "nie kursuje 03.05.2025r.",
}

// KnownDaysFilters maps whole symbol strings seen on the Grójec timetable to their service days.
var KnownDaysFilters = map[string][]DayType{
	"D":    {Workdays},
	"DU":   {Workdays},
	"SU":   {Workdays},
	"MU":   {Workdays},
	"DeU":  {Workdays},
	"dU":   AllDays,
	"C":    {Saturdays, SundaysHolidays},
	"CdU":  {Saturdays, SundaysHolidays},
	"CMU":  {Saturdays, SundaysHolidays},
	"MCdU": AllDays,
	"7GU":  {SundaysHolidays},
	"U":    AllDays,
	"6dU":  {Saturdays},
	"D6dU": {Workdays, Saturdays},
	"D6h":  {Workdays, Saturdays},
	"D6d":  {Workdays, Saturdays},
	"D6b":  {Workdays, Saturdays},
	"D6dź": {Workdays, Saturdays},
	"d":    AllDays,
	"dmU":  AllDays,
	"S":    {Workdays},
	"M":    {Workdays},
	"De":   {Workdays},
	"DEx":  {Workdays},
	"SCbU": AllDays,
	"bU":   AllDays,
	"CbU":  {Saturdays, SundaysHolidays},
	"bSC":  {Saturdays, SundaysHolidays},
	"CD":   AllDays,
	"Ca":   {Saturdays, SundaysHolidays},
	"g&a":  AllDays,
	"SCpl": AllDays,
	"Dm":   {Workdays},
	"pmh":  AllDays,
	"DU~W": {Workdays},
	"SU~W": {Workdays},
	"ph":   AllDays,
	"bl&":  AllDays,
}
