// Package logic executes command lines against the address book and keeps
// the on-disk snapshot, command history and event stream in step.
package logic

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/starford/findvisor/internal/apperr"
	"github.com/starford/findvisor/internal/book"
	"github.com/starford/findvisor/internal/checksum"
	"github.com/starford/findvisor/internal/command"
	"github.com/starford/findvisor/internal/models"
	"github.com/starford/findvisor/internal/parser"
	"github.com/starford/findvisor/internal/predicate"
	"github.com/starford/findvisor/internal/storage"
)

// MessageSaveFailed is appended to the feedback when the book cannot be written.
const MessageSaveFailed = "Could not save data to file: %v"

// History stores executed command lines.
type History interface {
	Record(r models.CommandRecord) error
	Search(keyword string, limit int) ([]models.CommandRecord, error)
}

// Publisher is notified after commands and reloads.
type Publisher interface {
	PublishCommand(line string, ok, mutated bool)
	PublishReload(contacts int)
}

// Response is the outcome of one command line.
type Response struct {
	Feedback string `json:"feedback"`
	OK       bool   `json:"ok"`
	Exit     bool   `json:"exit"`
}

// View is a point-in-time copy of the book as currently displayed.
type View struct {
	Filter   string
	Total    int
	Contacts []models.Contact
}

// Engine serialises command execution. All methods are safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	parser  *parser.Parser
	book    *book.Book
	store   storage.Provider
	file    string
	lastSum string

	history History
	events  Publisher
	clock   func() time.Time
	session string
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithParser replaces the default parser.
func WithParser(p *parser.Parser) Option {
	return func(e *Engine) { e.parser = p }
}

// WithHistory records every command line in h.
func WithHistory(h History) Option {
	return func(e *Engine) { e.history = h }
}

// WithPublisher announces commands and reloads to p.
func WithPublisher(p Publisher) Option {
	return func(e *Engine) { e.events = p }
}

// WithClock sets the source of the current time.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithSession sets the session id stored with history entries.
func WithSession(id string) Option {
	return func(e *Engine) { e.session = id }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New loads the book stored at file and returns an Engine over it.
// A missing file yields the sample contacts, written on the first change.
func New(store storage.Provider, file string, opts ...Option) (*Engine, error) {
	e := &Engine{
		parser:  parser.New(),
		store:   store,
		file:    file,
		clock:   time.Now,
		session: uuid.NewString(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	exists, err := store.Exists(file)
	if err != nil {
		return nil, fmt.Errorf("logic: stat book: %w", err)
	}
	if !exists {
		e.book = book.Sample()
		return e, nil
	}
	data, err := store.Read(file)
	if err != nil {
		return nil, fmt.Errorf("logic: read book: %w", err)
	}
	b, err := book.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("logic: load book: %w", err)
	}
	e.book = b
	e.lastSum = checksum.Sum(data)
	return e, nil
}

// Session returns the id history entries are stored under.
func (e *Engine) Session() string { return e.session }

// Execute parses and runs one command line.
func (e *Engine) Execute(line string) Response {
	e.mu.Lock()
	defer e.mu.Unlock()

	resp, mutated := e.execute(line)

	if strings.TrimSpace(line) != "" && e.history != nil {
		err := e.history.Record(models.CommandRecord{
			Session:    e.session,
			Line:       strings.TrimSpace(line),
			Result:     resp.Feedback,
			OK:         resp.OK,
			ExecutedAt: e.clock(),
		})
		if err != nil {
			e.logger.Warn("history: record failed", slog.String("error", err.Error()))
		}
	}
	if e.events != nil {
		e.events.PublishCommand(line, resp.OK, mutated)
	}
	return resp
}

func (e *Engine) execute(line string) (Response, bool) {
	cmd, err := e.parser.Parse(line)
	if err != nil {
		return e.failure(line, err), false
	}
	res, err := cmd.Execute(model{e}, e.clock())
	if err != nil {
		return e.failure(line, err), false
	}
	e.logger.Debug("command executed",
		slog.String("command", cmd.Word()),
		slog.Bool("mutated", res.Mutated))

	resp := Response{Feedback: res.Feedback, OK: true, Exit: res.Exit}
	if res.Mutated {
		if err := e.save(); err != nil {
			e.logger.Error("book: save failed", slog.String("error", err.Error()))
			resp.Feedback += "\n" + fmt.Sprintf(MessageSaveFailed, err)
			resp.OK = false
		}
	}
	return resp, res.Mutated
}

func (e *Engine) failure(line string, err error) Response {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		e.logger.Debug("command rejected", slog.String("line", line), slog.String("error", err.Error()))
		return Response{Feedback: ae.Msg}
	}
	e.logger.Error("command failed", slog.String("line", line), slog.String("error", err.Error()))
	return Response{Feedback: err.Error()}
}

func (e *Engine) save() error {
	data, err := book.Save(e.store, e.file, e.book)
	if err != nil {
		return err
	}
	e.lastSum = checksum.Sum(data)
	return nil
}

// View returns the active filter and the contacts it selects.
func (e *Engine) View() View {
	e.mu.Lock()
	defer e.mu.Unlock()
	return View{
		Filter:   e.book.Filter().Description(),
		Total:    e.book.Len(),
		Contacts: e.book.FilteredContacts(),
	}
}

// Reload re-reads the book file and swaps in its contacts when the content
// differs from what this engine last wrote. It reports whether a swap happened.
// A file that fails to decode is logged and ignored.
func (e *Engine) Reload() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	data, err := e.store.Read(e.file)
	if err != nil {
		return false, fmt.Errorf("logic: read book: %w", err)
	}
	sum := checksum.Sum(data)
	if sum == e.lastSum {
		return false, nil
	}
	b, err := book.Unmarshal(data)
	if err != nil {
		e.logger.Warn("book: external change rejected", slog.String("error", err.Error()))
		return false, nil
	}
	e.book.Replace(b.Contacts())
	e.lastSum = sum
	e.logger.Info("book: reloaded", slog.Int("contacts", e.book.Len()))
	if e.events != nil {
		e.events.PublishReload(e.book.Len())
	}
	return true, nil
}

// model adapts the engine's book and history to command.Model.
// Its methods run with e.mu held.
type model struct{ e *Engine }

var _ command.Model = model{}

func (m model) FilteredContacts() []models.Contact { return m.e.book.FilteredContacts() }

func (m model) SetContact(target, edited models.Contact) error {
	return m.e.book.SetContact(target, edited)
}

func (m model) UpdateFilter(p predicate.Predicate) { m.e.book.UpdateFilter(p) }

func (m model) RecentCommands(keyword string, limit int) ([]models.CommandRecord, error) {
	if m.e.history == nil {
		return nil, nil
	}
	return m.e.history.Search(keyword, limit)
}
