package acl

import "encoding/json"

// DefaultActions is the conventional action-key set created on a new
// server entry, for discoverability when reading the persisted file.
// "stop" has no matching command but has always been part of the
// persisted schema.
var DefaultActions = []string{
	"backup",
	"cmd",
	"get_logs",
	"kill",
	"list_backups",
	"restart",
	"restore",
	"start",
	"status",
	"stop",
}

// Document is the persisted permission document: the set of admin
// identities plus one entry per known server. Admins bypass every
// per-server check, including for servers absent from the document.
type Document struct {
	Admins  []string
	Servers []*ServerEntry
}

// ServerEntry holds, for one server, the identities authorized for each
// action. The action-key set is open: granting or revoking an unknown
// action creates its key on demand, and keys left empty are never
// pruned.
type ServerEntry struct {
	Name    string
	Actions map[string][]string
}

func NewDocument() *Document {
	return &Document{
		Admins:  []string{},
		Servers: []*ServerEntry{},
	}
}

func NewServerEntry(name string) *ServerEntry {
	actions := make(map[string][]string, len(DefaultActions))
	for _, action := range DefaultActions {
		actions[action] = []string{}
	}

	return &ServerEntry{
		Name:    name,
		Actions: actions,
	}
}

func (d *Document) IsAdmin(identity string) bool {
	for _, admin := range d.Admins {
		if admin == identity {
			return true
		}
	}
	return false
}

// Entry returns the entry for the named server, if present.
func (d *Document) Entry(name string) (*ServerEntry, bool) {
	for _, entry := range d.Servers {
		if entry.Name == name {
			return entry, true
		}
	}
	return nil, false
}

// EnsureEntry returns the entry for the named server, appending a new
// entry with the default action keys when none exists.
func (d *Document) EnsureEntry(name string) *ServerEntry {
	if entry, ok := d.Entry(name); ok {
		return entry
	}

	entry := NewServerEntry(name)
	d.Servers = append(d.Servers, entry)
	return entry
}

// AuthorizedServers returns the names of every server whose entry
// authorizes identity for action, in document order. A missing action
// key is an empty set, not an error.
func (d *Document) AuthorizedServers(identity, action string) []string {
	var names []string
	for _, entry := range d.Servers {
		if entry.Authorized(identity, action) {
			names = append(names, entry.Name)
		}
	}
	return names
}

func (d *Document) Clone() *Document {
	clone := &Document{
		Admins:  append([]string{}, d.Admins...),
		Servers: make([]*ServerEntry, 0, len(d.Servers)),
	}

	for _, entry := range d.Servers {
		actions := make(map[string][]string, len(entry.Actions))
		for action, identities := range entry.Actions {
			actions[action] = append([]string{}, identities...)
		}
		clone.Servers = append(clone.Servers, &ServerEntry{
			Name:    entry.Name,
			Actions: actions,
		})
	}

	return clone
}

func (e *ServerEntry) Authorized(identity, action string) bool {
	for _, authorized := range e.Actions[action] {
		if authorized == identity {
			return true
		}
	}
	return false
}

// Grant adds identity to the action's set, creating the key if absent.
// Granting an already-present identity is a no-op.
func (e *ServerEntry) Grant(action, identity string) {
	e.ensureAction(action)
	if e.Authorized(identity, action) {
		return
	}
	e.Actions[action] = append(e.Actions[action], identity)
}

// Revoke removes identity from the action's set. The key is created if
// absent, matching grant; revoking an absent identity is otherwise a
// no-op.
func (e *ServerEntry) Revoke(action, identity string) {
	e.ensureAction(action)

	identities := e.Actions[action]
	for i, authorized := range identities {
		if authorized == identity {
			e.Actions[action] = append(identities[:i:i], identities[i+1:]...)
			return
		}
	}
}

func (e *ServerEntry) ensureAction(action string) {
	if _, ok := e.Actions[action]; !ok {
		e.Actions[action] = []string{}
	}
}

// The wire shape nests admins under "users" and flattens each server
// entry into a single object holding "name" next to the action keys.
// Struct fields are declared in sorted-key order and map-backed entries
// marshal sorted, so serialization is byte-stable.

type documentJSON struct {
	Servers []*ServerEntry `json:"servers"`
	Users   usersJSON      `json:"users"`
}

type usersJSON struct {
	Admins []string `json:"admins"`
}

func (d *Document) MarshalJSON() ([]byte, error) {
	servers := d.Servers
	if servers == nil {
		servers = []*ServerEntry{}
	}
	admins := d.Admins
	if admins == nil {
		admins = []string{}
	}

	return json.Marshal(documentJSON{
		Servers: servers,
		Users:   usersJSON{Admins: admins},
	})
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var raw documentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Servers = raw.Servers
	if d.Servers == nil {
		d.Servers = []*ServerEntry{}
	}
	d.Admins = raw.Users.Admins
	if d.Admins == nil {
		d.Admins = []string{}
	}
	return nil
}

func (e *ServerEntry) MarshalJSON() ([]byte, error) {
	obj := make(map[string]interface{}, len(e.Actions)+1)
	obj["name"] = e.Name
	for action, identities := range e.Actions {
		if identities == nil {
			identities = []string{}
		}
		obj[action] = identities
	}
	return json.Marshal(obj)
}

func (e *ServerEntry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.Actions = make(map[string][]string, len(raw))
	for key, value := range raw {
		if key == "name" {
			if err := json.Unmarshal(value, &e.Name); err != nil {
				return err
			}
			continue
		}

		var identities []string
		if err := json.Unmarshal(value, &identities); err != nil {
			return err
		}
		if identities == nil {
			identities = []string{}
		}
		e.Actions[key] = identities
	}
	return nil
}
