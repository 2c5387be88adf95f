package classifier

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"NutriSense-Backend/domain"
)

func newTestClassifier(url string) Classifier {
	return &httpClassifier{
		modelURL: url,
		client:   &http.Client{Timeout: 2 * time.Second},
	}
}

func TestClassify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			t.Errorf("expected multipart request: %v", err)
		}
		if _, _, err := r.FormFile("image"); err != nil {
			t.Errorf("missing image part: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"predictions":[{"label":"idli","confidence":91.2},{"label":"dosa","confidence":5.1}]}`))
	}))
	defer srv.Close()

	c := newTestClassifier(srv.URL)
	got, err := c.Classify(context.Background(), []byte("fake-image"), "meal.jpg")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Label != "idli" || got[0].Confidence != 91.2 {
		t.Errorf("top prediction = %+v", got[0])
	}
}

func TestClassifyCapsPredictions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"predictions":[{"label":"a","confidence":40},{"label":"b","confidence":30},{"label":"c","confidence":20},{"label":"d","confidence":10}]}`))
	}))
	defer srv.Close()

	got, err := newTestClassifier(srv.URL).Classify(context.Background(), []byte("x"), "meal.jpg")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if len(got) != MaxPredictions {
		t.Errorf("len = %d, want %d", len(got), MaxPredictions)
	}
}

func TestClassifyEmptyPredictions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"predictions":[]}`))
	}))
	defer srv.Close()

	_, err := newTestClassifier(srv.URL).Classify(context.Background(), []byte("x"), "meal.jpg")
	if !errors.Is(err, domain.ErrNoPrediction) {
		t.Errorf("error = %v, want ErrNoPrediction", err)
	}
}

func TestClassifyServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model crashed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClassifier(srv.URL).Classify(context.Background(), []byte("x"), "meal.jpg")
	if !errors.Is(err, domain.ErrClassifierUnavailable) {
		t.Errorf("error = %v, want ErrClassifierUnavailable", err)
	}
}

func TestClassifyUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	_, err := newTestClassifier(srv.URL).Classify(context.Background(), []byte("x"), "meal.jpg")
	if !errors.Is(err, domain.ErrClassifierUnavailable) {
		t.Errorf("error = %v, want ErrClassifierUnavailable", err)
	}
}

func TestClassifyNoURLConfigured(t *testing.T) {
	_, err := newTestClassifier("").Classify(context.Background(), []byte("x"), "meal.jpg")
	if !errors.Is(err, domain.ErrClassifierUnavailable) {
		t.Errorf("error = %v, want ErrClassifierUnavailable", err)
	}
}
