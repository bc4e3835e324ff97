package css

// InheritedProperties is the fixed set of attribute keys that copy down
// from parent to child during the inheritance pre-pass (spec §4.1 step 1).
var InheritedProperties = []string{"color", "background-color", "white-space"}
