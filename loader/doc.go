// Package loader binds Go variables to paths of a document file.
//
// A [Loader] is built from a list of [Binding]s, each tying a variable to a
// dot path. The values the variables hold when the bindings are created are
// their defaults. [Loader.Load] writes a file of defaults if none exists,
// then reads the file and assigns every bound variable, restoring the
// default for paths the file lacks:
//
//	var (
//		name = "server"
//		port = 25565
//	)
//	l := loader.New("config.versa", []loader.Binding{
//		loader.String(&name, "name"),
//		loader.Int(&port, "net.port"),
//		loader.BranchComment("net", "network", ""),
//	})
//	if err := l.Load(); err != nil {
//		...
//	}
package loader
