package sql

// Aggregate and scalar function constructors. Each accepts an expression or
// a bare column name and wraps it in a function-call expression; rendering
// is dialect-independent. Functions outside the catalog go through Call.

// Count returns a COUNT(arg) expression.
func Count(arg any) FuncExpr { return Call("COUNT", arg) }

// Sum returns a SUM(arg) expression.
func Sum(arg any) FuncExpr { return Call("SUM", arg) }

// Max returns a MAX(arg) expression.
func Max(arg any) FuncExpr { return Call("MAX", arg) }

// Min returns a MIN(arg) expression.
func Min(arg any) FuncExpr { return Call("MIN", arg) }

// Avg returns an AVG(arg) expression.
func Avg(arg any) FuncExpr { return Call("AVG", arg) }

// Upper returns an UPPER(arg) expression.
func Upper(arg any) FuncExpr { return Call("UPPER", arg) }

// Lower returns a LOWER(arg) expression.
func Lower(arg any) FuncExpr { return Call("LOWER", arg) }

// Abs returns an ABS(arg) expression.
func Abs(arg any) FuncExpr { return Call("ABS", arg) }

// Sqrt returns a SQRT(arg) expression.
func Sqrt(arg any) FuncExpr { return Call("SQRT", arg) }
