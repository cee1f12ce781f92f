package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/internal/delivery/http/validator"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCourseUsecase returns canned values for handler tests.
type stubCourseUsecase struct {
	course *entity.Course
	views  []*usecase.CourseView
}

func (s *stubCourseUsecase) CreateCourse(ctx context.Context, input usecase.CreateCourseInput) (*entity.Course, error) {
	return s.course, nil
}

func (s *stubCourseUsecase) ListCourses(ctx context.Context) ([]*usecase.CourseView, error) {
	return s.views, nil
}

func (s *stubCourseUsecase) GetCourse(ctx context.Context, externalID string) (*usecase.CourseView, error) {
	return s.views[0], nil
}

func (s *stubCourseUsecase) GetCourseFeedback(ctx context.Context, externalID string) (*usecase.FeedbackOutput, error) {
	return &usecase.FeedbackOutput{}, nil
}

func TestCourseHandler_GetCourse(t *testing.T) {
	course := &entity.Course{
		ExternalID:      "go-101",
		Topic:           "Go Fundamentals",
		ActualPrice:     99.0,
		DiscountedPrice: 49.0,
	}
	stub := &stubCourseUsecase{
		course: course,
		views: []*usecase.CourseView{
			{Course: course, Summary: entity.SummarizeRatings([]float64{5, 4})},
		},
	}
	handler := &CourseHandler{courseUC: stub}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/courses/go-101", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/courses/:id")
	c.SetParamNames("id")
	c.SetParamValues("go-101")

	err := handler.GetCourse(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"success":true`)
	assert.Contains(t, responseBody, `"id":"go-101"`)
	assert.Contains(t, responseBody, `"topic":"Go Fundamentals"`)
	assert.Contains(t, responseBody, `"average":4.5`)
	assert.Contains(t, responseBody, `"full_stars":4`)
	assert.Contains(t, responseBody, `"half_star":true`)
}

func TestCourseHandler_CreateCourse_ValidationError(t *testing.T) {
	handler := &CourseHandler{courseUC: &stubCourseUsecase{}}

	// Missing required topic and a malformed video duration.
	body := `{"id":"go-101","videos":[{"title":"Intro","url":"http://cdn/v1","duration":"1:2:3","video_index":0}]}`

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateCourse(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"success":false`)
	assert.Contains(t, responseBody, "VALIDATION_ERROR")
}
