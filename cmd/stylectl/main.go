// Command stylectl inspects property registries and resolves element style
// trees through a stylecache.
package main

func main() {
	execute()
}
