package locale

// nameTable holds the display names for one language. Weekday arrays are
// indexed 0..6 with 0 = Sunday, matching date.Date.DayOfWeek.
type nameTable struct {
	months     [12]string
	long       [7]string
	short      [7]string
	narrow     [7]string
	yearSuffix string
}

// tables is parallel to the supported tag list in locale.go.
var tables = []nameTable{
	{ // English
		months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		long:   [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		short:  [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		narrow: [7]string{"S", "M", "T", "W", "T", "F", "S"},
	},
	{ // Chinese
		months: [12]string{
			"一月", "二月", "三月", "四月", "五月", "六月",
			"七月", "八月", "九月", "十月", "十一月", "十二月",
		},
		long:       [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"},
		short:      [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"},
		narrow:     [7]string{"日", "一", "二", "三", "四", "五", "六"},
		yearSuffix: "年",
	},
	{ // French
		months: [12]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		long:   [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		short:  [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		narrow: [7]string{"D", "L", "M", "M", "J", "V", "S"},
	},
	{ // German
		months: [12]string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		long:   [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		short:  [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		narrow: [7]string{"S", "M", "D", "M", "D", "F", "S"},
	},
	{ // Spanish
		months: [12]string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		long:   [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		short:  [7]string{"dom.", "lun.", "mar.", "mié.", "jue.", "vie.", "sáb."},
		narrow: [7]string{"D", "L", "M", "X", "J", "V", "S"},
	},
}
