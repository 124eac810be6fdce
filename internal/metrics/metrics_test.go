package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordCheckIn(t *testing.T) {
	CheckInsTotal.Reset()

	RecordCheckIn(CheckInCreated)
	RecordCheckIn(CheckInCreated)
	RecordCheckIn(CheckInTooFar)

	assert.Equal(t, float64(2), testutil.ToFloat64(CheckInsTotal.WithLabelValues(CheckInCreated)))
	assert.Equal(t, float64(1), testutil.ToFloat64(CheckInsTotal.WithLabelValues(CheckInTooFar)))
}

func TestRecordValidation(t *testing.T) {
	CheckInValidationsTotal.Reset()

	RecordValidation(ValidationLate)

	assert.Equal(t, float64(1), testutil.ToFloat64(CheckInValidationsTotal.WithLabelValues(ValidationLate)))
}

func TestRecordRegistration(t *testing.T) {
	before := testutil.ToFloat64(UsersRegisteredTotal)

	RecordRegistration()

	assert.Equal(t, before+1, testutil.ToFloat64(UsersRegisteredTotal))
}

func TestMiddleware_RecordsRoute(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware())
	router.GET("/gyms/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gyms/abc", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/gyms/:id", "200")))
}
