package registry

import "github.com/nfrund/pattivana/internal/cms"

// Service keys shared between modules. Using constants prevents typos.
const (
	ContentKey Key[*cms.Client] = "cms.client"
)
