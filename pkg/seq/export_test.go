package seq

var SplitHeader = splitHeader
