// Package hnfake serves an in-process imitation of the Hacker News API for
// tests and offline runs.
package hnfake

import (
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"hackerstories/types"
)

// Server is a fake API rooted at <URL>/v0. Lists are addressed by file
// name without extension ("topstories"); items by id.
type Server struct {
	mu        sync.Mutex
	lists     map[string][]int
	stories   map[int]types.Story
	listFail  map[string]int
	itemFail  map[int]int
	itemDelay map[int]time.Duration
	jitter    time.Duration

	listHits atomic.Int64
	itemHits atomic.Int64

	srv *httptest.Server
}

// New starts an empty fake server. Call Close when done.
func New() *Server {
	s := &Server{
		lists:     make(map[string][]int),
		stories:   make(map[int]types.Story),
		listFail:  make(map[string]int),
		itemFail:  make(map[int]int),
		itemDelay: make(map[int]time.Duration),
	}
	s.srv = httptest.NewServer(s.Router())
	return s
}

// Router constructs the gin engine serving the fake API.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	// one wildcard route: gin cannot mix /v0/:list with /v0/item/:id
	r.GET("/v0/*path", s.handle)
	return r
}

// Close shuts the server down.
func (s *Server) Close() { s.srv.Close() }

// URL is the server root, e.g. http://127.0.0.1:port
func (s *Server) URL() string { return s.srv.URL }

// APIBase is the equivalent of https://hacker-news.firebaseio.com/v0
func (s *Server) APIBase() string { return s.srv.URL + "/v0" }

// ListURL returns the URL of a named list.
func (s *Server) ListURL(name string) string { return s.APIBase() + "/" + name + ".json" }

// ItemBaseURL returns the prefix item requests are issued against.
func (s *Server) ItemBaseURL() string { return s.APIBase() + "/item" }

// SetList replaces the identifiers served for a list.
func (s *Server) SetList(name string, ids ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[name] = append([]int(nil), ids...)
}

// AddStory makes stories retrievable by id.
func (s *Server) AddStory(stories ...types.Story) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range stories {
		s.stories[st.ID] = st
	}
}

// FailList makes the named list answer with status. Zero clears it.
func (s *Server) FailList(name string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.listFail, name)
		return
	}
	s.listFail[name] = status
}

// FailItem makes the item answer with status. Zero clears it.
func (s *Server) FailItem(id, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.itemFail, id)
		return
	}
	s.itemFail[id] = status
}

// DelayItem holds the response for id by d.
func (s *Server) DelayItem(id int, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itemDelay[id] = d
}

// SetJitter adds a random delay in [0, d) to every item response.
func (s *Server) SetJitter(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jitter = d
}

// ListHits counts list requests served, failures included.
func (s *Server) ListHits() int64 { return s.listHits.Load() }

// ItemHits counts item requests served, failures included.
func (s *Server) ItemHits() int64 { return s.itemHits.Load() }

func (s *Server) handle(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if !strings.HasSuffix(path, ".json") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	path = strings.TrimSuffix(path, ".json")

	if rest, ok := strings.CutPrefix(path, "item/"); ok {
		id, err := strconv.Atoi(rest)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
			return
		}
		s.handleItem(c, id)
		return
	}
	s.handleList(c, path)
}

func (s *Server) handleList(c *gin.Context, name string) {
	s.listHits.Add(1)

	s.mu.Lock()
	status, failing := s.listFail[name]
	ids, found := s.lists[name]
	ids = append([]int(nil), ids...)
	s.mu.Unlock()

	switch {
	case failing:
		c.JSON(status, gin.H{"error": "list unavailable"})
	case !found:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown list"})
	default:
		c.JSON(http.StatusOK, ids)
	}
}

func (s *Server) handleItem(c *gin.Context, id int) {
	s.itemHits.Add(1)

	s.mu.Lock()
	status, failing := s.itemFail[id]
	story, found := s.stories[id]
	delay := s.itemDelay[id]
	if s.jitter > 0 {
		delay += rand.N(s.jitter)
	}
	s.mu.Unlock()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-c.Request.Context().Done():
			return
		}
	}

	switch {
	case failing:
		c.JSON(status, gin.H{"error": "item unavailable"})
	case !found:
		// the real API answers unknown ids with a literal null
		c.Data(http.StatusOK, "application/json", []byte("null"))
	default:
		c.JSON(http.StatusOK, story)
	}
}
