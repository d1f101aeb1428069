package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"career-orient/internal/domain/engagement"
	"career-orient/internal/domain/job"
	"career-orient/internal/domain/quiz"

	"github.com/google/uuid"
)

type memJobs struct {
	items     []job.Job
	err       error
	listCalls int
	allCalls  int
}

func (m *memJobs) List(_ context.Context, limit, offset int) ([]job.Job, error) {
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	if offset >= len(m.items) {
		return []job.Job{}, nil
	}
	end := offset + limit
	if end > len(m.items) {
		end = len(m.items)
	}
	return append([]job.Job(nil), m.items[offset:end]...), nil
}

func (m *memJobs) Count(context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.items), nil
}

func (m *memJobs) ListAll(context.Context) ([]job.Job, error) {
	m.allCalls++
	if m.err != nil {
		return nil, m.err
	}
	return append([]job.Job(nil), m.items...), nil
}

func (m *memJobs) GetByID(_ context.Context, id int64) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	for _, j := range m.items {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, job.ErrNotFound
}

func (m *memJobs) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, err := m.GetByID(ctx, id)
	if err == job.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

// memCache stores JSON in a map so hits round-trip like Redis does.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	b, ok := c.data[key]
	c.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.data[key] = b
	c.mu.Unlock()
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
	return nil
}

func (c *memCache) DeletePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

func (c *memCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[key]; ok {
		return false, nil
	}
	c.data[key] = []byte(value)
	return true, nil
}

func (c *memCache) DeleteIfValue(_ context.Context, key string, value string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if string(c.data[key]) != value {
		return false, nil
	}
	delete(c.data, key)
	return true, nil
}

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

type memQuizzes struct {
	quizzes   []quiz.Quiz
	questions []quiz.Question
}

func (m *memQuizzes) List(context.Context) ([]quiz.Quiz, error) { return m.quizzes, nil }

func (m *memQuizzes) GetByID(_ context.Context, id int64) (quiz.Quiz, error) {
	for _, q := range m.quizzes {
		if q.ID == id {
			return q, nil
		}
	}
	return quiz.Quiz{}, quiz.ErrNotFound
}

func (m *memQuizzes) ListQuestions(_ context.Context, quizID int64) ([]quiz.Question, error) {
	out := []quiz.Question{}
	for _, q := range m.questions {
		if q.QuizID == quizID {
			out = append(out, q)
		}
	}
	return out, nil
}

type memResults struct {
	items []quiz.Result
}

func (m *memResults) Create(_ context.Context, r quiz.Result) (quiz.Result, error) {
	r.ID = int64(len(m.items) + 1)
	m.items = append(m.items, r)
	return r, nil
}

func (m *memResults) GetByID(_ context.Context, id int64) (quiz.Result, error) {
	for _, r := range m.items {
		if r.ID == id {
			return r, nil
		}
	}
	return quiz.Result{}, quiz.ErrResultNotFound
}

func (m *memResults) ListByUser(_ context.Context, userID uuid.UUID, quizID *int64) ([]quiz.Result, error) {
	var out []quiz.Result
	for i := len(m.items) - 1; i >= 0; i-- {
		r := m.items[i]
		if r.UserID != userID {
			continue
		}
		if quizID != nil && r.QuizID != *quizID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type memFavorites struct {
	rows   []engagement.Favorite
	nextID int64
}

func (m *memFavorites) Add(_ context.Context, userID uuid.UUID, jobID int64) (engagement.Favorite, error) {
	for _, f := range m.rows {
		if f.UserID == userID && f.JobID == jobID {
			return f, nil
		}
	}
	m.nextID++
	f := engagement.Favorite{ID: m.nextID, UserID: userID, JobID: jobID, CreatedAt: time.Now().UTC()}
	m.rows = append(m.rows, f)
	return f, nil
}

func (m *memFavorites) Remove(_ context.Context, userID uuid.UUID, jobID int64) (int64, error) {
	kept := m.rows[:0]
	var n int64
	for _, f := range m.rows {
		if f.UserID == userID && f.JobID == jobID {
			n++
			continue
		}
		kept = append(kept, f)
	}
	m.rows = kept
	return n, nil
}

func (m *memFavorites) ListByUser(_ context.Context, userID uuid.UUID) ([]engagement.Favorite, error) {
	var out []engagement.Favorite
	for _, f := range m.rows {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

type memApplications struct {
	rows []engagement.Application
}

func (m *memApplications) Create(_ context.Context, a engagement.Application) (engagement.Application, error) {
	for _, existing := range m.rows {
		if existing.UserID == a.UserID && existing.JobID != nil && a.JobID != nil && *existing.JobID == *a.JobID {
			return engagement.Application{}, engagement.ErrAlreadyApplied
		}
	}
	a.ID = int64(len(m.rows) + 1)
	a.CreatedAt = time.Now().UTC()
	m.rows = append(m.rows, a)
	return a, nil
}

func (m *memApplications) ListByUser(_ context.Context, userID uuid.UUID) ([]engagement.Application, error) {
	var out []engagement.Application
	for _, a := range m.rows {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type publishedEvent struct {
	UserID  uuid.UUID
	Type    string
	Payload any
}

type recordingPublisher struct {
	events []publishedEvent
}

func (p *recordingPublisher) Publish(userID uuid.UUID, eventType string, payload any) {
	p.events = append(p.events, publishedEvent{UserID: userID, Type: eventType, Payload: payload})
}
