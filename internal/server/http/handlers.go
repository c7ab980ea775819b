package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/portfolio-backend/internal/server/mailer"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/models"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/services"
)

const dateLayout = "2006-01-02"

// --- auth ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email and password are required"})
		return
	}

	pair, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "admin logged in")
	writeJSON(w, http.StatusOK, loginResponse{Token: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

func (s *Server) handleRefreshToken(w http.ResponseWriter, r *http.Request) {
	tokens, ok := s.renew(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, tokens)
}

type signedURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
	renewedTokens
}

func (s *Server) handleSignedURL(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.store.SignUploadURL(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	tokens, ok := s.renew(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, signedURLResponse{UploadURL: url, Key: key, renewedTokens: tokens})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Tokens are stateless; there is nothing to revoke server-side. The
	// client discards its pair.
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// --- projects ---

type photoPayload struct {
	PhotoURL     string `json:"photo_url"`
	DisplayOrder int    `json:"display_order"`
}

type projectPayload struct {
	Date        string            `json:"date"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	ProjectURLs map[string]string `json:"project_urls"`
	Photos      []photoPayload    `json:"photos"`
}

// toInput converts the wire payload into a service input. URL entries are
// ordered by label so inserts are deterministic.
func (p *projectPayload) toInput() (services.ProjectInput, error) {
	date, err := time.Parse(dateLayout, p.Date)
	if err != nil {
		return services.ProjectInput{}, err
	}

	labels := make([]string, 0, len(p.ProjectURLs))
	for label := range p.ProjectURLs {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	urls := make([]services.URLEntry, 0, len(labels))
	for _, label := range labels {
		urls = append(urls, services.URLEntry{Label: label, URL: p.ProjectURLs[label]})
	}

	photos := make([]services.PhotoEntry, 0, len(p.Photos))
	for _, ph := range p.Photos {
		photos = append(photos, services.PhotoEntry{Key: ph.PhotoURL, DisplayOrder: ph.DisplayOrder})
	}

	return services.ProjectInput{
		Date:        date,
		Title:       p.Title,
		Description: p.Description,
		URLs:        urls,
		Photos:      photos,
	}, nil
}

type summaryResponse struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	PhotoURL     string `json:"photo_url"`
	DeployedURL  string `json:"deployed_url"`
	DisplayOrder int    `json:"display_order"`
}

func (s *Server) handleProjectSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.projects.Summaries(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := make([]summaryResponse, 0, len(summaries))
	for _, sum := range summaries {
		resp = append(resp, summaryResponse{
			ID:           sum.ID,
			Title:        sum.Title,
			Description:  sum.Description,
			PhotoURL:     sum.PhotoURL,
			DeployedURL:  sum.DeployedURL,
			DisplayOrder: sum.DisplayOrder,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type detailsResponse struct {
	ID           int64             `json:"id"`
	Date         string            `json:"date"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	DisplayOrder int               `json:"display_order"`
	ProjectURLs  map[string]string `json:"project_urls"`
	Photos       []photoPayload    `json:"photos"`
}

func detailsFromModel(d *models.ProjectDetails) detailsResponse {
	urls := make(map[string]string, len(d.URLs))
	for _, u := range d.URLs {
		urls[u.TypeLabel] = u.URL
	}
	photos := make([]photoPayload, 0, len(d.Photos))
	for _, p := range d.Photos {
		photos = append(photos, photoPayload{PhotoURL: p.PhotoURL, DisplayOrder: p.DisplayOrder})
	}
	return detailsResponse{
		ID:           d.Project.ID,
		Date:         d.Project.Date.Format(dateLayout),
		Title:        d.Project.Title,
		Description:  d.Project.Description,
		DisplayOrder: d.Project.DisplayOrder,
		ProjectURLs:  urls,
		Photos:       photos,
	}
}

func (s *Server) handleProjectDetails(w http.ResponseWriter, r *http.Request) {
	id, err := projectID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id must be a number"})
		return
	}

	details, err := s.projects.Details(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detailsFromModel(details))
}

type createResponse struct {
	ID int64 `json:"id"`
	renewedTokens
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var payload projectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	in, err := payload.toInput()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "date must be YYYY-MM-DD"})
		return
	}

	project, err := s.projects.Create(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	tokens, ok := s.renew(w, r)
	if !ok {
		return
	}

	s.logger.Info(r.Context(), "project created", "id", project.ID)
	writeJSON(w, http.StatusCreated, createResponse{ID: project.ID, renewedTokens: tokens})
}

type mutationResponse struct {
	Message string `json:"message"`
	renewedTokens
}

func (s *Server) handleEditProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id must be a number"})
		return
	}

	var payload projectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	in, err := payload.toInput()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "date must be YYYY-MM-DD"})
		return
	}

	if err := s.projects.Edit(r.Context(), id, in); err != nil {
		s.writeError(w, r, err)
		return
	}
	tokens, ok := s.renew(w, r)
	if !ok {
		return
	}

	s.logger.Info(r.Context(), "project edited", "id", id)
	writeJSON(w, http.StatusOK, mutationResponse{Message: "project updated", renewedTokens: tokens})
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id must be a number"})
		return
	}

	if err := s.projects.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	tokens, ok := s.renew(w, r)
	if !ok {
		return
	}

	s.logger.Info(r.Context(), "project deleted", "id", id)
	writeJSON(w, http.StatusOK, mutationResponse{Message: "project deleted", renewedTokens: tokens})
}

type orderUpdatePayload struct {
	ProjectID    int64 `json:"project_id"`
	DisplayOrder int   `json:"display_order"`
}

type reorderRequest struct {
	NewProjectOrder []orderUpdatePayload `json:"new_project_order"`
}

func (s *Server) handleReorderProjects(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	updates := make([]services.OrderUpdate, 0, len(req.NewProjectOrder))
	for _, u := range req.NewProjectOrder {
		updates = append(updates, services.OrderUpdate{ProjectID: u.ProjectID, DisplayOrder: u.DisplayOrder})
	}

	// The writer assumes a well-formed permutation; validate here.
	if err := services.ValidateOrderUpdates(updates); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.projects.Reorder(r.Context(), updates); err != nil {
		s.writeError(w, r, err)
		return
	}
	tokens, ok := s.renew(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, mutationResponse{Message: "project order updated", renewedTokens: tokens})
}

// --- contact ---

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name, email and message are required"})
		return
	}

	msg := mailer.Message{Name: req.Name, Email: req.Email, Body: req.Message}
	if err := s.mailer.Send(r.Context(), msg); err != nil {
		s.logger.Error(r.Context(), "contact mail delivery failed", "error", err.Error())
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "message could not be delivered"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "message sent"})
}

func projectID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
