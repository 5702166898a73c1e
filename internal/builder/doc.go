// Package builder runs the interactive configuration session.
//
// The session asks every question in a fixed order, building each
// section of config.ManagerConfig from the leaves up, and then saves the
// result with config.GenerateConfig. There is no going back: an operator
// who mistypes an earlier answer restarts the session.
//
//	b := builder.New(prompt.New(os.Stdin, os.Stdout, os.Stderr))
//	path, err := b.Run()
//
// Blank answers to the three image folder questions select the folders
// from config.DefaultSauronConfig.
package builder
