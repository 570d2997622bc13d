package session

// StringKey names a session value stored verbatim.
type StringKey string

// ObjectKey names a session value stored as JSON.
type ObjectKey string

// Known keys. A name belongs to exactly one of the two kinds.
const (
	KeyUserName    StringKey = "UserName"
	KeyIsConnected StringKey = "IsConnected"

	KeyTodos ObjectKey = "todos"
)

// ConnectedTrue is the only IsConnected value that counts as signed in.
const ConnectedTrue = "True"

// Backend fields carry the kind so the string and object paths never share a slot.
func (k StringKey) field() string { return "s:" + string(k) }

func (k ObjectKey) field() string { return "o:" + string(k) }
