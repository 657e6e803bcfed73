package registry

// providerKind discriminates the Provider variants.
type providerKind int

const (
	kindFunc providerKind = iota
	kindContainer
	kindModuleName
	kindModuleSet
	kindThisModule
	kindAuto
	kindAutoAlt
)

// Provider is a tagged source of case candidates, resolved exactly once
// at the Collect boundary. Construct providers with Func, Container,
// Module, ModuleOf, ThisModule, Auto or AutoAlt.
type Provider struct {
	kind   providerKind
	c      *Case
	cont   *ContainerSet
	module string
	set    *ModuleSet
}

// Func wraps one explicit case. Its name is not prefix-checked, since
// passing it explicitly already expresses intent.
func Func(c Case) Provider {
	cc := c

	return Provider{kind: kindFunc, c: &cc}
}

// Container wraps an explicit case-bearing container. Members are still
// prefix-checked; the container name itself is not.
func Container(cs *ContainerSet) Provider {
	return Provider{kind: kindContainer, cont: cs}
}

// Module references a registered module by path. Relative references
// are resolved against the host: "." means the host itself, ".sub"
// means the host package's sibling "sub".
func Module(name string) Provider {
	return Provider{kind: kindModuleName, module: name}
}

// ModuleOf wraps a module set passed by value.
func ModuleOf(set *ModuleSet) Provider {
	return Provider{kind: kindModuleSet, set: set}
}

// ThisModule references the host module itself.
func ThisModule() Provider {
	return Provider{kind: kindThisModule}
}

// Auto requests discovery of a conventionally named sibling module:
// "<host>_cases" is attempted first, then "<pkg>.cases_<stem>" where
// stem is the host's base name with its "test_" prefix removed. Failure
// to resolve either is ErrAutoDiscovery naming both attempts.
func Auto() Provider {
	return Provider{kind: kindAuto}
}

// AutoAlt requests discovery of the alternate sibling convention only:
// "<pkg>.cases_<stem>" where stem is the host's base name with its
// "test_" prefix removed. Unlike Auto it never falls back to
// "<host>_cases", so it selects the alternate module even when the
// primary one exists. Failure to resolve is ErrAutoDiscovery.
func AutoAlt() Provider {
	return Provider{kind: kindAutoAlt}
}
