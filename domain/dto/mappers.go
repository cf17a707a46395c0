package dto

import (
	"taskflow/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		AssigneeID:  task.AssigneeID,
		CreatorID:   task.CreatorID,
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = *TaskToTaskResponse(t)
	}
	return out
}

func LogToLogResponse(log *models.ActivityLog) *ActivityLogResponse {
	if log == nil {
		return nil
	}
	return &ActivityLogResponse{
		ID:         log.ID,
		UserID:     log.UserID,
		TaskID:     log.TaskID,
		ActionType: log.ActionType,
		Detail:     log.Detail,
		CreatedAt:  log.CreatedAt,
	}
}

func LogsToLogResponses(logs []*models.ActivityLog) []ActivityLogResponse {
	out := make([]ActivityLogResponse, len(logs))
	for i, l := range logs {
		out[i] = *LogToLogResponse(l)
	}
	return out
}
