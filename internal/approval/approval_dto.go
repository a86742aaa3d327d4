package approval

type SubmitLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,max=50"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"max=1000"`
}
