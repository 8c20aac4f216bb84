package communication

import (
	"context"
	"encoding/json"
)

// Judge is the remote referee that plays two submitted programs against each other.
type Judge interface {
	Submit(ctx context.Context, req Request) (Response, error)
}

type Request struct {
	Cmd       string `json:"cmd"`
	Syndicate int    `json:"syn"`
	Name      string `json:"name"`
	Program   string `json:"data"`  // Source of the program moving first
	Opponent  string `json:"data2"` // Source of the program moving second
	Victory1  string `json:"vt1"`
	Victory2  string `json:"vt2"`
}

// Response is the judge's reply array. Victory1 and Victory2 echo the assigned
// conditions and Result is the second-to-last element.
type Response struct {
	Victory1 []string
	Victory2 []string
	Result   json.RawMessage
	Elements []json.RawMessage
}
