package cart

import (
	"encoding/json"

	"github.com/gin-contrib/sessions"
)

// sessionKey holds the serialized cart inside the visitor's session.
const sessionKey = "cart"

// FromSession reconstructs the cart stored in s. Malformed or partially
// corrupt session data never fails the request: unreadable payloads yield an
// empty cart and individually broken lines are dropped.
func FromSession(s sessions.Session) Cart {
	raw, ok := s.Get(sessionKey).(string)
	if !ok || raw == "" {
		return nil
	}
	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil
	}
	return normalize(lines)
}

// Save writes the cart back into s and flushes the session.
func Save(s sessions.Session, c Cart) error {
	if len(c) == 0 {
		s.Delete(sessionKey)
		return s.Save()
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	s.Set(sessionKey, string(raw))
	return s.Save()
}

// Clear drops the cart from s.
func Clear(s sessions.Session) error {
	s.Delete(sessionKey)
	return s.Save()
}

// normalize enforces the cart invariants on data read back from the session:
// no line without a product id, no non-positive quantity, one line per
// product id (first occurrence wins, quantities merged).
func normalize(lines []Line) Cart {
	var out Cart
	for _, l := range lines {
		if l.ProductID == 0 || l.Quantity < 1 {
			continue
		}
		merged := false
		for i := range out {
			if out[i].ProductID == l.ProductID {
				out[i].Quantity += l.Quantity
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, l)
		}
	}
	return out
}
