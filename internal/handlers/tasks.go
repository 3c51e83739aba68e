package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tasklist/webapp/internal/services"
	"github.com/tasklist/webapp/internal/session"
	"github.com/tasklist/webapp/types"
	"github.com/tasklist/webapp/web"
)

const (
	noticeStoreError = "Database error!"
	noticeTaskAdded  = "Task added successfully!"
)

const dueDateLayout = "2006-01-02"

// TaskHandler serves the dashboard and the owner-scoped task pages.
type TaskHandler struct {
	tasks    *services.TaskService
	sessions *session.Manager
	views    *web.Renderer
}

func NewTaskHandler(tasks *services.TaskService, sessions *session.Manager, views *web.Renderer) *TaskHandler {
	return &TaskHandler{tasks: tasks, sessions: sessions, views: views}
}

// TaskRouter registers the protected task routes on the given router.
// The caller is expected to mount it behind RequireSession.
func TaskRouter(r chi.Router, handler *TaskHandler) {
	r.Get("/", handler.Home)
	r.Get("/all_tasks", handler.AllTasks)
	r.Get("/add_task", handler.ShowAddTask)
	r.Post("/add_task", handler.AddTask)
	r.Get("/delete_task/{task_id}", handler.DeleteTask)
	r.Get("/complete_task/{task_id}", handler.CompleteTask)
}

type homePage struct {
	Flashes  []string
	UserName string
	Counts   types.TaskCounts
}

// Home renders the dashboard counts for the logged-in user.
func (h *TaskHandler) Home(w http.ResponseWriter, r *http.Request) {
	current, err := currentFromContext(r.Context())
	if err != nil {
		redirect(w, r, "/login")
		return
	}

	counts, err := h.tasks.Counts(r.Context(), current.UserID)
	if err != nil {
		h.sessions.Flash(w, r, noticeStoreError)
		counts = types.TaskCounts{}
	}

	page := homePage{
		Flashes:  h.sessions.Flashes(w, r),
		UserName: current.Name,
		Counts:   counts,
	}
	logRenderError("home.html", h.views.Render(w, "home.html", page))
}

type allTasksPage struct {
	Flashes []string
	Tasks   []types.Task
}

// AllTasks lists every task owned by the logged-in user, ascending by
// due date.
func (h *TaskHandler) AllTasks(w http.ResponseWriter, r *http.Request) {
	current, err := currentFromContext(r.Context())
	if err != nil {
		redirect(w, r, "/login")
		return
	}

	tasks, err := h.tasks.List(r.Context(), current.UserID)
	if err != nil {
		h.sessions.Flash(w, r, noticeStoreError)
		redirect(w, r, "/")
		return
	}

	page := allTasksPage{
		Flashes: h.sessions.Flashes(w, r),
		Tasks:   tasks,
	}
	logRenderError("all_tasks.html", h.views.Render(w, "all_tasks.html", page))
}

type addTaskPage struct {
	Flashes []string
}

// ShowAddTask renders the task creation form.
func (h *TaskHandler) ShowAddTask(w http.ResponseWriter, r *http.Request) {
	page := addTaskPage{Flashes: h.sessions.Flashes(w, r)}
	logRenderError("add_task.html", h.views.Render(w, "add_task.html", page))
}

// AddTask handles the task creation form. The new task always starts
// pending regardless of anything in the request; the other fields are
// passed through without validation.
func (h *TaskHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	current, err := currentFromContext(r.Context())
	if err != nil {
		redirect(w, r, "/login")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.sessions.Flash(w, r, noticeStoreError)
		redirect(w, r, "/add_task")
		return
	}

	dueDate, err := time.Parse(dueDateLayout, r.PostFormValue("due_date"))
	if err != nil {
		h.sessions.Flash(w, r, noticeStoreError)
		redirect(w, r, "/add_task")
		return
	}

	_, err = h.tasks.Create(r.Context(), current.UserID, services.CreateInput{
		Title:       r.PostFormValue("task_title"),
		Description: r.PostFormValue("task_description"),
		DueDate:     dueDate,
		Priority:    r.PostFormValue("priority"),
	})
	if err != nil {
		h.sessions.Flash(w, r, noticeStoreError)
		redirect(w, r, "/add_task")
		return
	}

	h.sessions.Flash(w, r, noticeTaskAdded)
	redirect(w, r, "/")
}

// DeleteTask removes the task when it belongs to the logged-in user.
// A foreign or unknown task id is treated exactly like a successful
// delete: the row is gone either way.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	current, err := currentFromContext(r.Context())
	if err != nil {
		redirect(w, r, "/login")
		return
	}

	taskID, err := strconv.Atoi(chi.URLParam(r, "task_id"))
	if err == nil {
		if err := h.tasks.Delete(r.Context(), current.UserID, taskID); err != nil {
			h.sessions.Flash(w, r, noticeStoreError)
		}
	}
	redirect(w, r, "/all_tasks")
}

// CompleteTask marks the task completed when it belongs to the
// logged-in user. Like DeleteTask, a no-match is silent.
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	current, err := currentFromContext(r.Context())
	if err != nil {
		redirect(w, r, "/login")
		return
	}

	taskID, err := strconv.Atoi(chi.URLParam(r, "task_id"))
	if err == nil {
		if err := h.tasks.Complete(r.Context(), current.UserID, taskID); err != nil {
			h.sessions.Flash(w, r, noticeStoreError)
		}
	}
	redirect(w, r, "/all_tasks")
}
