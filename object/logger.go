package object

import "github.com/g3n/fbxkit/internal/flog"

var log = flog.New("object", flog.Default)
