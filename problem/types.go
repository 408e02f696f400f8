package problem

// Box is the W×H×D extent of the container to dissect.
type Box struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
	D int `yaml:"d"`
}

// Problem is the literal field table from spec.md §6.
type Problem struct {
	Box        Box      `yaml:"box"`
	Pieces     []string `yaml:"pieces"`
	Constrain  string   `yaml:"constrain,omitempty"`
	ConstrainX string   `yaml:"constrain_x,omitempty"`
	ConstrainY string   `yaml:"constrain_y,omitempty"`
	ConstrainZ string   `yaml:"constrain_z,omitempty"`
	Lock       string   `yaml:"lock,omitempty"`
	LockCount  int      `yaml:"lockcount,omitempty"`
}
