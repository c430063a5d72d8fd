package domain

import "encoding/json"

// WorkoutDay is a named training session inside a user's workout split.
// Identity is the ID; names are not unique. Days are embedded in the owning
// user's document and are never shared across users.
type WorkoutDay struct {
	ID        string     `bson:"id" json:"id"`
	Name      string     `bson:"name" json:"name"`
	Exercises []Exercise `bson:"exercises" json:"exercises"`
}

// Exercise is a single movement within a WorkoutDay. It never exists outside
// of exactly one day.
type Exercise struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Sets int    `bson:"sets" json:"sets"`
	Reps Reps   `bson:"reps" json:"reps"`
}

// Reps holds a repetition target. The model emits either a bare number (10)
// or a range string ("8-12"), so both JSON shapes must decode.
type Reps string

func (r *Reps) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Reps(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = Reps(n.String())
	return nil
}

func (r Reps) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

func (r Reps) String() string {
	return string(r)
}
