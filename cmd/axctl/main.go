// Command axctl replays, validates and inspects accessibility tree update
// scripts.
package main

func main() {
	execute()
}
