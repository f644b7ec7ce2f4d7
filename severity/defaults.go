package severity

// DefaultErrorChecks is the seed list every project starts with, all at ERROR.
//
// The list carries repeated entries (MultiVariableDeclaration, PackageLocation,
// ReturnMissingNullable, WildcardImport, UnnecessaryDefaultInEnumSwitch). They
// collapse when seeded and are kept verbatim so the published default policy
// stays recognisable; see DefaultErrorCheckDuplicates.
var DefaultErrorChecks = []string{
	"AssertFalse",
	"BigDecimalLiteralDouble",
	"ConstructorInvokesOverridable",
	"EmptyTopLevelDeclaration",
	"MissingDefault",
	"NonCanonicalStaticMemberImport",
	"PrimitiveArrayPassedToVarargsMethod",
	"RedundantThrows",
	"StaticQualifiedUsingExpression",
	"StringEquality",
	"UnnecessaryDefaultInEnumSwitch",
	"WildcardImport",
	"MultipleTopLevelClasses",
	"MultiVariableDeclaration",
	"MixedArrayDimensions",
	"MethodCanBeStatic",
	"PrivateConstructorForUtilityClass",
	"PackageLocation",
	"ConstantField",
	"ReturnMissingNullable",
	"FieldMissingNullable",
	"ParameterNotNullable",
	"ConstructorLeaksThis",
	"MultiVariableDeclaration",
	"FieldCanBeFinal",
	"LambdaFunctionalInterface",
	"PackageLocation",
	"RemoveUnusedImports",
	"ReturnMissingNullable",
	"SwitchDefault",
	"ThrowsUncheckedException",
	"TypeParameterNaming",
	"UnnecessaryStaticImport",
	"WildcardImport",
	"UnnecessaryDefaultInEnumSwitch",
	"FunctionalInterfaceClash",
}

// DefaultErrorCheckDuplicates returns the names that occur more than once in
// DefaultErrorChecks, in order of their second occurrence.
func DefaultErrorCheckDuplicates() []string {
	seen := make(map[string]bool, len(DefaultErrorChecks))
	reported := make(map[string]bool)
	var dups []string
	for _, name := range DefaultErrorChecks {
		if seen[name] && !reported[name] {
			dups = append(dups, name)
			reported[name] = true
		}
		seen[name] = true
	}
	return dups
}
