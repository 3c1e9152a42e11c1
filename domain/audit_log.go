package domain

// DateLayout is the calendar date format used across the audit trail.
const DateLayout = "2006-01-02"

// DateTimeLayout is used for timeline and note timestamps.
const DateTimeLayout = "2006-01-02 15:04"

type ReportHistoryEntry struct {
	Date       string `json:"date"`
	Product    string `json:"product"`
	Reason     string `json:"reason"`
	ReportedBy string `json:"reportedBy,omitempty"`
}

// TimelineEntry is an operator action taken on a flagged account.
type TimelineEntry struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Action   string `json:"action"`
	Operator string `json:"operator"`
	Status   string `json:"status"`
}

type Note struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Author string `json:"author"`
	Text   string `json:"text"`
}

type LogEntry struct {
	ID             string               `json:"id"`
	Username       string               `json:"username"`
	NumReports     int                  `json:"numReports"`
	MainProduct    string               `json:"mainProduct"`
	LastReportDate string               `json:"lastReportDate"`
	DaysAtRisk     int                  `json:"daysAtRisk"`
	LastAction     string               `json:"lastAction"`
	Status         string               `json:"status"`
	ReportHistory  []ReportHistoryEntry `json:"reportHistory"`
}

// LogFilter fields are optional; the zero value matches every entry.
type LogFilter struct {
	StartDate string
	EndDate   string
	Username  string
	Product   string
}

type RiskMetrics struct {
	TimeSpentGambling int `json:"timeSpentGambling"`
	NetLosses         int `json:"netLosses"`
	DepositFrequency  int `json:"depositFrequency"`
}

type LogDetail struct {
	Username         string               `json:"username"`
	Email            string               `json:"email"`
	Age              int                  `json:"age"`
	Province         string               `json:"province"`
	RegistrationDate string               `json:"registrationDate"`
	LastLogin        string               `json:"lastLogin"`
	ReportHistory    []ReportHistoryEntry `json:"reportHistory"`
	Timeline         []TimelineEntry      `json:"timeline"`
	Notes            []Note               `json:"notes"`
	RiskMetrics      RiskMetrics          `json:"riskMetrics"`
}
