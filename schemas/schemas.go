// Package schemas содержит JSON Schema контракты событий жизненного цикла,
// встроенные в бинарник. Схемы версионируются по пути:
// events/<имя-события>/v<N>.json.
package schemas

import "embed"

//go:embed events
var SchemasFS embed.FS
