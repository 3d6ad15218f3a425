package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ly3848/task-manager/internal/constants"
	"github.com/ly3848/task-manager/internal/dto"
	apierrors "github.com/ly3848/task-manager/internal/errors"
	"github.com/ly3848/task-manager/internal/middleware"
	"github.com/ly3848/task-manager/internal/models"
	"github.com/ly3848/task-manager/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	data    *store.DataManager
	handler *TaskHandler
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	suite.data = store.NewDataManager()
	suite.handler = NewTaskHandler(suite.data)
	gin.SetMode(gin.TestMode)
}

// Helper function to create test data
func (suite *TaskHandlerTestSuite) createTestUser(username string) *models.User {
	return suite.data.CreateUser(username, username+"@example.com", models.RoleUser)
}

func (suite *TaskHandlerTestSuite) createTestTask(title string, assignedTo *uint64) *models.Task {
	return suite.data.CreateTask(title, "Test Description", models.PriorityMedium, assignedTo)
}

// Helper function to create authenticated context
func (suite *TaskHandlerTestSuite) createAuthContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)

	return c, w
}

// Helper function to set task context (simulates RequireTask middleware)
func (suite *TaskHandlerTestSuite) setTaskContext(c *gin.Context, task *models.Task) {
	c.Set(middleware.ContextKeyTask, task)
}

func (suite *TaskHandlerTestSuite) TestListTasks_Success() {
	user := suite.createTestUser("lister")
	task := suite.createTestTask("Test Task", nil)

	c, w := suite.createAuthContext("GET", "/api/tasks", nil, user.ID)

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Contains(suite.T(), response, "tasks")
	assert.Contains(suite.T(), response, "pagination")

	tasks := response["tasks"].([]interface{})
	assert.Len(suite.T(), tasks, 1)

	firstTask := tasks[0].(map[string]interface{})
	assert.Equal(suite.T(), task.Title, firstTask["title"])
}

func (suite *TaskHandlerTestSuite) TestListTasks_FilterByAssignee() {
	user := suite.createTestUser("assignee")
	other := suite.createTestUser("other")
	mine := suite.createTestTask("Mine", &user.ID)
	suite.createTestTask("Theirs", &other.ID)

	c, w := suite.createAuthContext("GET", "/api/tasks", nil, user.ID)
	c.Request.URL.RawQuery = "assigned_to=1"

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)

	tasks := response["tasks"].([]interface{})
	assert.Len(suite.T(), tasks, 1)
	firstTask := tasks[0].(map[string]interface{})
	assert.Equal(suite.T(), mine.Title, firstTask["title"])
}

func (suite *TaskHandlerTestSuite) TestGetTask_Success() {
	user := suite.createTestUser("reader")
	task := suite.createTestTask("Test Task", nil)

	c, w := suite.createAuthContext("GET", "/api/tasks/1", nil, user.ID)
	suite.setTaskContext(c, task)

	suite.handler.GetTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.TaskDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), task.ID, response.ID)
	assert.Equal(suite.T(), "pending", response.Status)
}

func (suite *TaskHandlerTestSuite) TestGetTask_NotFoundInContext() {
	user := suite.createTestUser("reader")
	c, w := suite.createAuthContext("GET", "/api/tasks/1", nil, user.ID)

	suite.handler.GetTask(c)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
}

// A task whose assignee was deleted still loads; the stale ID is kept.
func (suite *TaskHandlerTestSuite) TestGetTask_DanglingAssignee() {
	user := suite.createTestUser("doomed")
	task := suite.createTestTask("Orphaned Task", &user.ID)
	suite.Require().NoError(suite.data.DeleteUser(user.ID))

	c, w := suite.createAuthContext("GET", "/api/tasks/1", nil, user.ID)
	suite.setTaskContext(c, task)

	suite.handler.GetTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.TaskDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response.AssignedTo)
	assert.Equal(suite.T(), user.ID, *response.AssignedTo)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Success() {
	user := suite.createTestUser("creator")

	requestBody := map[string]interface{}{
		"title":       "New Task",
		"description": "Task Description",
		"priority":    3,
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/tasks", body, user.ID)

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response dto.TaskDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "New Task", response.Title)
	assert.Equal(suite.T(), "HIGH", response.Priority)
	assert.Equal(suite.T(), "pending", response.Status)
	assert.Nil(suite.T(), response.AssignedTo)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_DefaultPriority() {
	user := suite.createTestUser("creator")

	requestBody := map[string]interface{}{
		"title": "No Priority",
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/tasks", body, user.ID)

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response dto.TaskDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "MEDIUM", response.Priority)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_InvalidRequest() {
	user := suite.createTestUser("creator")

	// Missing required field: title
	requestBody := map[string]interface{}{
		"description": "no title",
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/tasks", body, user.ID)

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_UnknownAssignee() {
	user := suite.createTestUser("creator")

	requestBody := map[string]interface{}{
		"title":       "Assigned Task",
		"assigned_to": 999,
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/tasks", body, user.ID)

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_PartialUpdate() {
	user := suite.createTestUser("editor")
	task := suite.createTestTask("Old Title", nil)

	requestBody := map[string]interface{}{
		"title": "New Title",
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("PATCH", "/api/tasks/1", body, user.ID)
	suite.setTaskContext(c, task)

	suite.handler.UpdateTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.TaskDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "New Title", response.Title)
	// Fields absent from the request keep their values.
	assert.Equal(suite.T(), "Test Description", response.Description)
	assert.Equal(suite.T(), "MEDIUM", response.Priority)
}

func (suite *TaskHandlerTestSuite) TestAssignTask_Success() {
	user := suite.createTestUser("worker")
	task := suite.createTestTask("Unowned", nil)

	requestBody := map[string]interface{}{
		"user_id": user.ID,
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/tasks/1/assign", body, user.ID)
	suite.setTaskContext(c, task)

	suite.handler.AssignTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.TaskDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response.AssignedTo)
	assert.Equal(suite.T(), user.ID, *response.AssignedTo)
}

func (suite *TaskHandlerTestSuite) TestAssignTask_UnknownUser() {
	user := suite.createTestUser("worker")
	task := suite.createTestTask("Unowned", nil)

	requestBody := map[string]interface{}{
		"user_id": 999,
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/tasks/1/assign", body, user.ID)
	suite.setTaskContext(c, task)

	suite.handler.AssignTask(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestStartTask_Success() {
	user := suite.createTestUser("worker")
	task := suite.createTestTask("Pending Task", nil)

	c, w := suite.createAuthContext("POST", "/api/tasks/1/start", nil, user.ID)
	suite.setTaskContext(c, task)

	suite.handler.StartTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.TaskDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "in_progress", response.Status)
}

func (suite *TaskHandlerTestSuite) TestStartTask_AlreadyStarted() {
	user := suite.createTestUser("worker")
	task := suite.createTestTask("Running Task", nil)
	suite.Require().NoError(task.Start())

	c, w := suite.createAuthContext("POST", "/api/tasks/1/start", nil, user.ID)
	suite.setTaskContext(c, task)

	suite.handler.StartTask(c)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	var response apierrors.APIError
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), apierrors.ErrCodeInvalidTransition, response.Code)
}

func (suite *TaskHandlerTestSuite) TestCompleteTask_SetsCompletedAt() {
	user := suite.createTestUser("worker")
	task := suite.createTestTask("Almost Done", nil)
	suite.Require().NoError(task.Start())

	c, w := suite.createAuthContext("POST", "/api/tasks/1/complete", nil, user.ID)
	suite.setTaskContext(c, task)

	suite.handler.CompleteTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.TaskDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "completed", response.Status)
	assert.NotNil(suite.T(), response.CompletedAt)
}

func (suite *TaskHandlerTestSuite) TestCancelTask_Completed() {
	user := suite.createTestUser("worker")
	task := suite.createTestTask("Finished Task", nil)
	suite.Require().NoError(task.Complete())

	c, w := suite.createAuthContext("POST", "/api/tasks/1/cancel", nil, user.ID)
	suite.setTaskContext(c, task)

	suite.handler.CancelTask(c)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_Success() {
	user := suite.createTestUser("worker")
	task := suite.createTestTask("Doomed Task", nil)

	c, w := suite.createAuthContext("DELETE", "/api/tasks/1", nil, user.ID)
	suite.setTaskContext(c, task)

	suite.handler.DeleteTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	_, err := suite.data.GetTask(task.ID)
	assert.ErrorIs(suite.T(), err, store.ErrTaskNotFound)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
