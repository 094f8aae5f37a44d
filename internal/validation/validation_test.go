package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/benventuring/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func lessonType(s string) *models.LessonType {
	lt := models.LessonType(s)
	return &lt
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *Error
	require.True(t, errors.As(err, &verr), "expected *validation.Error, got %v", err)
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidate_Inquiry(t *testing.T) {
	tests := []struct {
		name           string
		inquiry        models.Inquiry
		expectedFields []string
	}{
		{
			name:    "valid minimal",
			inquiry: models.Inquiry{Name: "Ann", Email: "ann@example.com"},
		},
		{
			name:           "missing name",
			inquiry:        models.Inquiry{Email: "ann@example.com"},
			expectedFields: []string{"name"},
		},
		{
			name:           "missing name and email",
			inquiry:        models.Inquiry{Message: strPtr("hello")},
			expectedFields: []string{"name", "email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.inquiry)
			if tt.expectedFields == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.expectedFields, fieldNames(t, err))
		})
	}
}

func TestValidate_Lead(t *testing.T) {
	assert.NoError(t, Validate(&models.Lead{Email: "a@b.com"}))
	assert.Equal(t, []string{"email"}, fieldNames(t, Validate(&models.Lead{Note: strPtr("hi")})))
}

func TestValidate_CourseNested(t *testing.T) {
	valid := models.Course{
		ID:    "c1",
		Title: "Course",
		Slug:  "course",
		Modules: []models.Module{
			{ID: "m1", Title: "One", Lessons: []models.Lesson{
				{ID: "l1", Title: "Intro", Type: lessonType("video")},
				{ID: "l2", Title: "Reading"},
			}},
		},
	}
	assert.NoError(t, Validate(&valid))

	tests := []struct {
		name           string
		mutate         func(c *models.Course)
		expectedFields []string
		expectedMsg    string
	}{
		{
			name: "bad lesson type",
			mutate: func(c *models.Course) {
				c.Modules[0].Lessons[1].Type = lessonType("podcast")
			},
			expectedFields: []string{"modules[0].lessons[1].type"},
			expectedMsg:    "must be one of: video, article, quiz, assignment, live, other",
		},
		{
			name: "missing lesson title",
			mutate: func(c *models.Course) {
				c.Modules[0].Lessons[0].Title = ""
			},
			expectedFields: []string{"modules[0].lessons[0].title"},
			expectedMsg:    "field required",
		},
		{
			name: "duplicate lesson id",
			mutate: func(c *models.Course) {
				c.Modules[0].Lessons[1].ID = "l1"
			},
			expectedFields: []string{"modules[0].lessons"},
			expectedMsg:    "duplicate id",
		},
		{
			name: "missing slug",
			mutate: func(c *models.Course) {
				c.Slug = ""
			},
			expectedFields: []string{"slug"},
			expectedMsg:    "field required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := valid
			course.Modules = []models.Module{{
				ID:      valid.Modules[0].ID,
				Title:   valid.Modules[0].Title,
				Lessons: append([]models.Lesson(nil), valid.Modules[0].Lessons...),
			}}
			tt.mutate(&course)

			err := Validate(&course)
			assert.Equal(t, tt.expectedFields, fieldNames(t, err))

			var verr *Error
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.expectedMsg, verr.Fields[0].Message)
		})
	}
}

func TestValidate_PortfolioItem(t *testing.T) {
	item := models.PortfolioItem{ID: "p1", Title: "Site", Slug: "site"}
	assert.Equal(t, []string{"category"}, fieldNames(t, Validate(&item)))
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		malformed      bool
		expectedFields []string
	}{
		{name: "valid", body: `{"email":"a@b.com","extra":1}`},
		{name: "empty body", body: ``, malformed: true},
		{name: "broken json", body: `{"email":`, malformed: true},
		{name: "wrong field type", body: `{"email":42}`, expectedFields: []string{"email"}},
		{name: "array body", body: `[]`, expectedFields: []string{"body"}},
		{name: "trailing whitespace", body: "{\"email\":\"a@b.com\"}\n\t "},
		{name: "trailing text", body: `{"email":"a@b.com"} this is not json`, malformed: true},
		{name: "second object", body: `{"email":"a@b.com"}{"email":"c@d.com"}`, malformed: true},
		{name: "trailing array", body: `{"email":"a@b.com"} [1]`, malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lead models.Lead
			err := DecodeJSON(strings.NewReader(tt.body), &lead)
			switch {
			case tt.malformed:
				assert.ErrorIs(t, err, ErrMalformedBody)
			case tt.expectedFields != nil:
				assert.Equal(t, tt.expectedFields, fieldNames(t, err))
			default:
				assert.NoError(t, err)
				assert.Equal(t, "a@b.com", lead.Email)
			}
		})
	}
}

func TestDecodeJSON_TypeMessage(t *testing.T) {
	var lead models.Lead
	err := DecodeJSON(strings.NewReader(`{"email":"a@b.com","note":true}`), &lead)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "note", verr.Fields[0].Field)
	assert.Equal(t, "expected string, got bool", verr.Fields[0].Message)
	assert.Contains(t, verr.Error(), "note: expected string")
}

func TestDescribe(t *testing.T) {
	course := Describe(models.Course{})
	assert.Equal(t, "Course", course.Title)
	assert.Equal(t, "object", course.Type)
	assert.Equal(t, []string{"id", "title", "slug"}, course.Required)

	names := make([]string, 0, len(course.Fields))
	for _, f := range course.Fields {
		names = append(names, f.Name)
	}
	assert.NotContains(t, names, "_id")
	assert.Equal(t, []string{"id", "title", "description", "price", "modules", "instructor", "slug", "thumbnail"}, names)

	modules := course.Fields[4]
	assert.Equal(t, "array", modules.Type)
	require.NotNil(t, modules.Items)
	assert.Equal(t, "object", modules.Items.Type)

	lessons := modules.Items.Fields[2]
	assert.Equal(t, "lessons", lessons.Name)
	lessonType := lessons.Items.Fields[2]
	assert.Equal(t, "type", lessonType.Name)
	assert.Equal(t, "string", lessonType.Type)
	assert.True(t, lessonType.Nullable)
	assert.Equal(t, []string{"video", "article", "quiz", "assignment", "live", "other"}, lessonType.Enum)

	lead := Describe(&models.Lead{})
	assert.Equal(t, []string{"email"}, lead.Required)
	require.NotNil(t, lead.Fields[1].Default)
	assert.Equal(t, models.LeadSourceChatbot, *lead.Fields[1].Default)

	inquiry := Describe(models.Inquiry{})
	status := inquiry.Fields[len(inquiry.Fields)-1]
	assert.Equal(t, "status", status.Name)
	require.NotNil(t, status.Default)
	assert.Equal(t, models.InquiryStatusNew, *status.Default)

	item := Describe(models.PortfolioItem{})
	metrics := item.Fields[7]
	assert.Equal(t, "metrics", metrics.Name)
	assert.Equal(t, "object", metrics.Type)
	assert.True(t, metrics.Nullable)
}
