package attendance

type LogResponse struct {
	ID         int64   `json:"id"`
	EmployeeID int64   `json:"employee_id"`
	Date       string  `json:"date"`
	ClockIn    *string `json:"clock_in"`
	ClockOut   *string `json:"clock_out"`
}

type BreakResponse struct {
	ID        int64   `json:"id"`
	LogID     int64   `json:"log_id"`
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

// TodayResponse is the time-clock dashboard aggregate: the scheduled shift,
// the day's log and the open break, each absent when not applicable.
type TodayResponse struct {
	Date        string         `json:"date"`
	ShiftName   *string        `json:"shift_name"`
	ShiftStart  *string        `json:"shift_start"`
	ShiftEnd    *string        `json:"shift_end"`
	Log         *LogResponse   `json:"log"`
	ActiveBreak *BreakResponse `json:"active_break"`
}
