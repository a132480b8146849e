// Package backend is the typed HTTP client for the remote progress backend,
// the sole owner of all durable data (students, disciplines, teachers).
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models"
)

// Client talks to the progress backend. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient creates a backend client with the given base URL and per-request
// timeout.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// do performs one request and returns the raw response body. Non-2xx
// answers become *UpstreamError; transport failures are returned as-is.
// No retries anywhere: every call is a single attempt.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build backend request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	return raw, nil
}

func decode[T any](raw []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode backend response: %w", err)
	}
	return &out, nil
}

// GetStudent looks a student up by matrícula.
func (c *Client) GetStudent(ctx context.Context, studentID string) (*models.Student, error) {
	raw, err := c.do(ctx, http.MethodGet, "/students/"+url.PathEscape(studentID), nil)
	if err != nil {
		return nil, err
	}
	return decode[models.Student](raw)
}

// CreateStudent registers a new student record upstream.
func (c *Client) CreateStudent(ctx context.Context, studentID string) (*models.Student, error) {
	raw, err := c.do(ctx, http.MethodPost, "/students", map[string]string{"studentId": studentID})
	if err != nil {
		return nil, err
	}
	return decode[models.Student](raw)
}

// GetOrCreateStudent fetches a student; an upstream miss is interpreted as
// "new student" and answered by creating the record. The second return
// value signals creation so callers can answer 201.
func (c *Client) GetOrCreateStudent(ctx context.Context, studentID string) (*models.Student, bool, error) {
	student, err := c.GetStudent(ctx, studentID)
	if err == nil {
		return student, false, nil
	}
	if !IsNotFound(err) {
		return nil, false, err
	}

	c.logger.Info().Str("studentId", studentID).Msg("Student not found upstream, creating")
	student, err = c.CreateStudent(ctx, studentID)
	if err != nil {
		return nil, false, err
	}
	return student, true, nil
}

// ListStudents returns every registered student, including upstream-computed
// credit totals.
func (c *Client) ListStudents(ctx context.Context) ([]models.Student, error) {
	raw, err := c.do(ctx, http.MethodGet, "/students", nil)
	if err != nil {
		return nil, err
	}
	var students []models.Student
	if err := json.Unmarshal(raw, &students); err != nil {
		return nil, fmt.Errorf("failed to decode backend response: %w", err)
	}
	return students, nil
}

// UpdateStudentProfile patches name/lastName and returns the raw upstream
// answer for pass-through.
func (c *Client) UpdateStudentProfile(ctx context.Context, studentID string, fields map[string]string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, "/students/"+url.PathEscape(studentID), fields)
}

// GetStudentDisciplines returns the raw {current: [...], ...} document.
func (c *Client) GetStudentDisciplines(ctx context.Context, studentID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/students/"+url.PathEscape(studentID)+"/disciplines", nil)
}

// PutCurrentDiscipline enrolls the student in a class of a discipline.
func (c *Client) PutCurrentDiscipline(ctx context.Context, studentID, disciplineID string, classNumber int) (json.RawMessage, error) {
	path := "/students/" + url.PathEscape(studentID) + "/current-disciplines/" + url.PathEscape(disciplineID)
	return c.do(ctx, http.MethodPut, path, map[string]int{"classNumber": classNumber})
}

// DeleteCurrentDiscipline removes an active enrollment.
func (c *Client) DeleteCurrentDiscipline(ctx context.Context, studentID, disciplineID string) (json.RawMessage, error) {
	path := "/students/" + url.PathEscape(studentID) + "/current-disciplines/" + url.PathEscape(disciplineID)
	return c.do(ctx, http.MethodDelete, path, nil)
}

// GetCompletedDiscipline checks one completed-discipline entry.
func (c *Client) GetCompletedDiscipline(ctx context.Context, studentID, disciplineID string) (json.RawMessage, error) {
	path := "/students/" + url.PathEscape(studentID) + "/completed-disciplines/" + url.PathEscape(disciplineID)
	return c.do(ctx, http.MethodGet, path, nil)
}

// PutCompletedDiscipline marks a discipline as completed.
func (c *Client) PutCompletedDiscipline(ctx context.Context, studentID, disciplineID string) (json.RawMessage, error) {
	path := "/students/" + url.PathEscape(studentID) + "/completed-disciplines/" + url.PathEscape(disciplineID)
	return c.do(ctx, http.MethodPut, path, nil)
}

// DeleteCompletedDiscipline unmarks a completed discipline.
func (c *Client) DeleteCompletedDiscipline(ctx context.Context, studentID, disciplineID string) (json.RawMessage, error) {
	path := "/students/" + url.PathEscape(studentID) + "/completed-disciplines/" + url.PathEscape(disciplineID)
	return c.do(ctx, http.MethodDelete, path, nil)
}

// ListDisciplines returns the raw discipline list.
func (c *Client) ListDisciplines(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/disciplines", nil)
}

// GetDiscipline returns the detail of one discipline, including its classes.
func (c *Client) GetDiscipline(ctx context.Context, disciplineID string) (*models.Discipline, error) {
	raw, err := c.do(ctx, http.MethodGet, "/disciplines/"+url.PathEscape(disciplineID), nil)
	if err != nil {
		return nil, err
	}
	return decode[models.Discipline](raw)
}

// GetDisciplineRaw returns the unparsed discipline detail for proxy
// pass-through, preserving fields this service does not model.
func (c *Client) GetDisciplineRaw(ctx context.Context, disciplineID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/disciplines/"+url.PathEscape(disciplineID), nil)
}

// PatchClassWhatsApp stores the WhatsApp group link of one class.
func (c *Client) PatchClassWhatsApp(ctx context.Context, disciplineID string, classNumber int, link string) (json.RawMessage, error) {
	path := fmt.Sprintf("/disciplines/%s/classes/%d", url.PathEscape(disciplineID), classNumber)
	return c.do(ctx, http.MethodPatch, path, map[string]string{"whatsappGroup": link})
}

// TriggerScrape starts the upstream discipline scrape job. The backend
// acknowledges with 202 and an empty body.
func (c *Client) TriggerScrape(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/disciplines/actions/scrape", nil)
	return err
}

// TriggerWhatsAppScrape starts the upstream WhatsApp-link scrape job.
func (c *Client) TriggerWhatsAppScrape(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/disciplines/actions/scrape-whatsapp", nil)
	return err
}

// ListTeachers returns the raw teacher roster.
func (c *Client) ListTeachers(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/teachers", nil)
}
