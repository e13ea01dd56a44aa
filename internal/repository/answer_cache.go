package repository

import "sync"

type answerCacheKey struct {
	qid      uint
	code     string
	language string
	scaleID  int
}

// AnswerTextCache memoises localized answer texts by (question, code, language, scale).
// Entries live until the question is invalidated or the cache is reset.
type AnswerTextCache struct {
	mu      sync.RWMutex
	entries map[answerCacheKey]string
}

func NewAnswerTextCache() *AnswerTextCache {
	return &AnswerTextCache{entries: make(map[answerCacheKey]string)}
}

func (c *AnswerTextCache) Get(qid uint, code, language string, scaleID int) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	text, ok := c.entries[answerCacheKey{qid, code, language, scaleID}]
	return text, ok
}

func (c *AnswerTextCache) Put(qid uint, code, language string, scaleID int, text string) {
	c.mu.Lock()
	c.entries[answerCacheKey{qid, code, language, scaleID}] = text
	c.mu.Unlock()
}

// InvalidateQuestion drops every cached text of one question.
func (c *AnswerTextCache) InvalidateQuestion(qid uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.qid == qid {
			delete(c.entries, k)
		}
	}
}

func (c *AnswerTextCache) Reset() {
	c.mu.Lock()
	c.entries = make(map[answerCacheKey]string)
	c.mu.Unlock()
}

func (c *AnswerTextCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
