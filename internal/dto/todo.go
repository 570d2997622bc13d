package dto

// AddTaskForm is the form body for POST /Todo/Add.
type AddTaskForm struct {
	Label       string `form:"label" binding:"required"`
	Description string `form:"description" binding:"required"`
	DueDate     string `form:"dueDate"` // optional: "2026-02-19"
	Status      string `form:"status" binding:"omitempty,oneof=Todo Doing Done"`
}
