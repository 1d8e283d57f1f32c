/*
Package variants provides the concrete variants shipped with stencil and a
registry to look them up by name.

ConcreteClass1 supplies only the required operations. ConcreteClass2 also
overrides the first hook, so the same client code produces one extra line
for it.
*/
package variants
