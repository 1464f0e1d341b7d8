package dto

import (
	"github.com/Msparihar/todo/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func ProjectToProjectResponse(project *models.Project) *ProjectResponse {
	if project == nil {
		return nil
	}
	return &ProjectResponse{
		ID:          project.ID,
		UserID:      project.UserID,
		Name:        project.Name,
		Description: project.Description,
		Color:       project.Color,
		IsArchived:  project.IsArchived,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

func ProjectsToProjectResponses(projects []*models.Project) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, *ProjectToProjectResponse(p))
	}
	return responses
}

func ProjectToProjectWithTodosResponse(project *models.Project) *ProjectWithTodosResponse {
	if project == nil {
		return nil
	}
	resp := &ProjectWithTodosResponse{
		ProjectResponse: *ProjectToProjectResponse(project),
		Todos:           make([]TodoResponse, 0, len(project.Todos)),
	}
	for i := range project.Todos {
		resp.Todos = append(resp.Todos, *TodoToTodoResponse(&project.Todos[i]))
	}
	return resp
}

func TagToTagResponse(tag *models.Tag) *TagResponse {
	if tag == nil {
		return nil
	}
	return &TagResponse{
		ID:        tag.ID,
		UserID:    tag.UserID,
		Name:      tag.Name,
		Color:     tag.Color,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}

func TagsToTagResponses(tags []*models.Tag) []TagResponse {
	responses := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		responses = append(responses, *TagToTagResponse(t))
	}
	return responses
}

func TodoToTodoResponse(todo *models.Todo) *TodoResponse {
	if todo == nil {
		return nil
	}
	return &TodoResponse{
		ID:          todo.ID,
		ProjectID:   todo.ProjectID,
		UserID:      todo.UserID,
		Title:       todo.Title,
		Description: todo.Description,
		Status:      todo.Status,
		Priority:    todo.Priority,
		IsCompleted: todo.IsCompleted,
		DueDate:     todo.DueDate,
		CompletedAt: todo.CompletedAt,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}
}

func TodoToTodoWithProjectResponse(todo *models.Todo) *TodoWithProjectResponse {
	if todo == nil {
		return nil
	}
	resp := &TodoWithProjectResponse{
		TodoResponse: *TodoToTodoResponse(todo),
		Project:      *ProjectToProjectResponse(&todo.Project),
		Tags:         make([]TagResponse, 0, len(todo.Tags)),
	}
	for i := range todo.Tags {
		resp.Tags = append(resp.Tags, *TagToTagResponse(&todo.Tags[i]))
	}
	return resp
}

func TodosToTodoWithProjectResponses(todos []*models.Todo) []TodoWithProjectResponse {
	responses := make([]TodoWithProjectResponse, 0, len(todos))
	for _, t := range todos {
		responses = append(responses, *TodoToTodoWithProjectResponse(t))
	}
	return responses
}
