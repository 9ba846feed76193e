package models

// ChartData is a (label, count) series in the shape chart widgets consume.
// Labels[i] is counted by Data[i].
type ChartData struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// Total sums the series.
func (c ChartData) Total() int {
	total := 0
	for _, n := range c.Data {
		total += n
	}
	return total
}

// AdminDashboard is everything the admin view renders.
type AdminDashboard struct {
	Appointments []Appointment `json:"appointments"`
	CategoryData ChartData     `json:"category_data"`
	MonthlyData  ChartData     `json:"monthly_data"`
}
