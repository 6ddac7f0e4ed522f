package events

import "github.com/atomicstack/happie-menu/internal/logging"

type MenuTracer struct{}

var Menu = MenuTracer{}

func (MenuTracer) Add(id int, name, course, price string) {
	logging.Trace("menu.add", map[string]interface{}{
		"id":     id,
		"name":   name,
		"course": course,
		"price":  price,
	})
}

func (MenuTracer) Reject(err error) {
	if err == nil {
		return
	}
	logging.Trace("menu.reject", map[string]interface{}{"error": err.Error()})
}

func (MenuTracer) Remove(id int, found bool) {
	logging.Trace("menu.remove", map[string]interface{}{"id": id, "found": found})
}

func (MenuTracer) Filter(filter string) {
	logging.Trace("menu.filter", map[string]interface{}{"filter": filter})
}

func (MenuTracer) Search(query string, matches int) {
	logging.Trace("menu.search", map[string]interface{}{"query": query, "matches": matches})
}
