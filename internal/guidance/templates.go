package guidance

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"prreviewer/internal/ui"
)

// builtinTemplates holds the default evaluation checklist per app type.
// Lookups never fail: unknown types fall through to the generic entry.
var builtinTemplates = map[AppType]Template{
	AppTypeGeneric: {
		AppType: AppTypeGeneric,
		Considerations: `When evaluating this code, consider:
1. Does it follow Single Responsibility Principle? Are classes/functions focused on a single task?
2. Does it follow Open/Closed Principle? Can it be extended without modification?
3. Are method signatures, parameters, and return types well-designed?
4. Are dependencies appropriately managed?
5. Is the code extensible and maintainable?`,
	},
	AppTypeGo: {
		AppType: AppTypeGo,
		Considerations: `When evaluating this Go code, consider:
1. Are errors checked and wrapped with context rather than discarded?
2. Are goroutines and channels used safely (no leaks, no unguarded shared state)?
3. Do exported identifiers have clear names and doc comments?
4. Are interfaces small and accepted at boundaries, with concrete types returned?
5. Is context.Context propagated through blocking calls?`,
	},
	AppTypeReact: {
		AppType: AppTypeReact,
		Considerations: `When evaluating this React code, consider:
1. Are components focused, with state lifted to the right level?
2. Are hooks used correctly (dependency arrays, no conditional hooks)?
3. Are expensive computations memoized where re-renders matter?
4. Is user input escaped/sanitized before rendering?
5. Are side effects isolated in effects rather than render paths?`,
	},
	AppTypeNode: {
		AppType: AppTypeNode,
		Considerations: `When evaluating this Node.js code, consider:
1. Are promises awaited and rejections handled?
2. Is user input validated before reaching queries or shell commands?
3. Are secrets kept out of source and logs?
4. Is blocking work kept off the event loop?
5. Are dependencies pinned and minimal?`,
	},
	AppTypePython: {
		AppType: AppTypePython,
		Considerations: `When evaluating this Python code, consider:
1. Are exceptions caught narrowly rather than with bare except clauses?
2. Are mutable default arguments avoided?
3. Do functions have type hints consistent with their use?
4. Is resource cleanup handled with context managers?
5. Are module-level side effects avoided?`,
	},
	AppTypeJava: {
		AppType: AppTypeJava,
		Considerations: `When evaluating this Java code, consider:
1. Are nulls handled explicitly (Optional, annotations, or checks)?
2. Is synchronization correct for shared mutable state?
3. Are resources closed via try-with-resources?
4. Do classes follow single responsibility with dependencies injected?
5. Are checked exceptions used meaningfully rather than swallowed?`,
	},
	AppTypeRails: {
		AppType: AppTypeRails,
		Considerations: `When evaluating this Rails code, consider:
1. Are queries protected from N+1 problems (includes/preload)?
2. Is mass assignment restricted through strong parameters?
3. Is business logic kept out of controllers and views?
4. Are migrations reversible and safe for production data?
5. Are validations enforced at both model and database level where needed?`,
	},
	AppTypeRust: {
		AppType: AppTypeRust,
		Considerations: `When evaluating this Rust code, consider:
1. Is unsafe code isolated and justified?
2. Are errors propagated with Result rather than unwrap/expect in library paths?
3. Are lifetimes and borrows structured to avoid needless clones?
4. Is concurrency built on Send/Sync-sound abstractions?
5. Are public APIs documented and minimal?`,
	},
	AppTypeTypeScript: {
		AppType: AppTypeTypeScript,
		Considerations: `When evaluating this TypeScript code, consider:
1. Are types precise (no unnecessary any or assertions)?
2. Are null/undefined cases covered by the type design?
3. Are discriminated unions used for variant data?
4. Is strict mode respected without suppression comments?
5. Are module boundaries and exports intentional?`,
	},
}

// TemplateRegistry resolves templates by app type, letting a repository
// override any built-in with `.pr-review/templates/<apptype>.yml`.
type TemplateRegistry struct {
	templates map[AppType]Template
}

// NewTemplateRegistry builds a registry from the built-ins plus any custom
// template files under dir. Malformed or unreadable custom files are skipped
// with a warning; the built-in stays in place.
func NewTemplateRegistry(dir string) *TemplateRegistry {
	templates := make(map[AppType]Template, len(builtinTemplates))
	for appType, tmpl := range builtinTemplates {
		templates[appType] = tmpl
	}

	registry := &TemplateRegistry{templates: templates}
	if dir != "" {
		registry.loadCustom(dir)
	}
	return registry
}

func (r *TemplateRegistry) loadCustom(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// No template directory is the common case, not a problem.
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yml" && ext != ".yaml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			ui.Warnf("skipping custom template %s: %v", path, err)
			continue
		}

		var tmpl Template
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			ui.Warnf("skipping malformed custom template %s: %v", path, err)
			continue
		}
		if tmpl.AppType == "" || tmpl.Considerations == "" {
			ui.Warnf("skipping incomplete custom template %s", path)
			continue
		}

		r.templates[tmpl.AppType] = tmpl
	}
}

// Lookup returns the template for an app type. It never fails; unknown
// types get the generic template.
func (r *TemplateRegistry) Lookup(appType AppType) Template {
	if tmpl, ok := r.templates[appType]; ok {
		return tmpl
	}
	return r.templates[AppTypeGeneric]
}
