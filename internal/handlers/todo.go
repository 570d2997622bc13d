package handlers

import (
	"errors"
	"net/http"
	"strings"

	dom "github.com/Pedroxsbai/TODOAPP/internal/domain"
	"github.com/Pedroxsbai/TODOAPP/internal/dto"
	"github.com/Pedroxsbai/TODOAPP/internal/service"
	"github.com/Pedroxsbai/TODOAPP/internal/session"
	"github.com/Pedroxsbai/TODOAPP/internal/views"

	"github.com/gin-gonic/gin"
)

const TodoListPath = "/Todo"

type TodoHandler struct {
	svc   *service.TaskService
	users *service.UserService
}

func NewTodoHandler(svc *service.TaskService, users *service.UserService) *TodoHandler {
	return &TodoHandler{svc: svc, users: users}
}

// List godoc
// @Summary      Task list page
// @Tags         todo
// @Produce      html
// @Success      200
// @Success      302  "redirect to /Inscription when not signed in"
// @Router       /Todo [get]
func (h *TodoHandler) List(c *gin.Context) {
	sess := session.FromContext(c)
	if sess == nil {
		renderError(c, h.users, session.ErrNoSession)
		return
	}
	list, err := h.svc.List(c.Request.Context(), sess)
	if err != nil {
		renderError(c, h.users, err)
		return
	}
	c.HTML(http.StatusOK, views.TodoList, viewData(c, h.users, "Tasks", gin.H{"Tasks": list}))
}

// AddForm godoc
// @Summary      Empty add-task form
// @Tags         todo
// @Produce      html
// @Success      200
// @Router       /Todo/Add [get]
func (h *TodoHandler) AddForm(c *gin.Context) {
	h.renderAddForm(c, dto.AddTaskForm{}, nil)
}

// Add godoc
// @Summary      Add a task to the session list
// @Tags         todo
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        label        formData  string  true   "Label"
// @Param        description  formData  string  true   "Description"
// @Param        dueDate      formData  string  false  "Due date (YYYY-MM-DD)"
// @Param        status       formData  string  false  "Todo, Doing or Done"
// @Success      200  "form re-rendered with validation messages"
// @Success      302  "redirect to /Todo"
// @Router       /Todo/Add [post]
func (h *TodoHandler) Add(c *gin.Context) {
	sess := session.FromContext(c)
	if sess == nil {
		renderError(c, h.users, session.ErrNoSession)
		return
	}

	var form dto.AddTaskForm
	errs := map[string]string{}
	if err := c.ShouldBind(&form); err != nil {
		errs = bindErrors(err)
	}
	var due *dom.Date
	if s := strings.TrimSpace(form.DueDate); s != "" {
		d, err := dom.ParseDate(s)
		if err != nil {
			errs["dueDate"] = "use a date like 2026-02-19"
		} else {
			due = &d
		}
	}
	if len(errs) > 0 {
		h.renderAddForm(c, form, errs)
		return
	}

	_, err := h.svc.Add(c.Request.Context(), sess, service.NewTaskInput{
		Label:       form.Label,
		Description: form.Description,
		DueDate:     due,
		Status:      dom.Status(form.Status),
	})
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		h.renderAddForm(c, form, verr.Fields)
		return
	}
	if err != nil {
		renderError(c, h.users, err)
		return
	}
	c.Redirect(http.StatusFound, TodoListPath)
}

func (h *TodoHandler) renderAddForm(c *gin.Context, form dto.AddTaskForm, errs map[string]string) {
	if errs == nil {
		errs = map[string]string{}
	}
	c.HTML(http.StatusOK, views.TodoAdd, viewData(c, h.users, "Add a task", gin.H{
		"Form":     form,
		"Errors":   errs,
		"Statuses": dom.Statuses(),
	}))
}
